// Package token, imzalı access/refresh token'ların encode/decode işlemlerini yapar.
//
// Token, server tarafında hiçbir state tutmayan, kendi kendini taşıyan
// (self-contained) bir JWT'dir. Payload üç alan içerir:
//
//	sub  — kullanıcı id'si (string olarak yazılır, decode'da int64'e normalize edilir)
//	exp  — mutlak geçerlilik sonu
//	type — "access" veya "refresh"
//
// "type" alanı kritik: refresh token'ın access token yerine (veya tersi)
// kullanılmasını engeller. İkisi de aynı secret ile imzalandığı için bu
// ayrımı sadece payload'daki etiket sağlar.
//
// Codec saf bir yapıdır: secret, algoritma ve saat constructor'dan enjekte
// edilir, global state okumaz. Testlerde sabit secret ve sabit saat ile
// deterministik olarak çalıştırılabilir.
package token

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/akinalp/tarif/pkg"
	"github.com/golang-jwt/jwt/v5"
)

// Kind, token'ın türünü ayırt eden etiket — payload'daki "type" claim'i.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Codec, token encode/decode işlemlerini yapan yapı.
// Tüm alanlar construction'dan sonra immutable'dır — process ömrü boyunca
// paylaşılabilir, goroutine-safe'dir.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
	now    func() time.Time // test için enjekte edilebilir saat
}

// NewCodec, verilen secret ve algoritma ile bir Codec oluşturur.
// Sadece HMAC ailesi (HS256/HS384/HS512) kabul edilir — asimetrik
// algoritmalara veya "none"a izin vermek imza doğrulamasını zayıflatır.
func NewCodec(secret, algorithm string) (*Codec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC-family", algorithm)
	}

	return &Codec{
		secret: []byte(secret),
		method: method,
		now:    time.Now,
	}, nil
}

// Encode, verilen kullanıcı için imzalı bir token string üretir.
// Yan etkisi yoktur — aynı girdi ve aynı saat ile deterministiktir.
func (c *Codec) Encode(subject int64, kind Kind, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  strconv.FormatInt(subject, 10),
		"exp":  jwt.NewNumericDate(c.now().Add(ttl)),
		"type": string(kind),
	}

	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Decode, token string'ini doğrular ve subject'i (kullanıcı id) döner.
//
// Başarısızlık türleri ayırt edilebilir sentinel error'lardır:
//   - pkg.ErrInvalidToken    — imza tutmuyor, süre dolmuş veya format bozuk
//   - pkg.ErrWrongTokenType  — payload'daki "type", expected ile uyuşmuyor
//   - pkg.ErrMissingSubject  — payload'da "sub" yok
//   - pkg.ErrInvalidSubject  — "sub" var ama ne integer ne digit-only string
//
// expected boş ("") geçilirse type kontrolü atlanır.
// Hangi detayın dışarıya gösterileceği çağıranın kararıdır — access token
// doğrulamasında hepsi tek bir 401'e indirgenir, refresh akışında ayrıştırılır.
func (c *Codec) Decode(tokenString string, expected Kind) (int64, error) {
	parsed, err := jwt.Parse(tokenString,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return 0, pkg.ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, pkg.ErrInvalidToken
	}

	if expected != "" {
		kind, _ := claims["type"].(string)
		if Kind(kind) != expected {
			return 0, pkg.ErrWrongTokenType
		}
	}

	sub, exists := claims["sub"]
	if !exists || sub == nil {
		return 0, pkg.ErrMissingSubject
	}

	return normalizeSubject(sub)
}

// normalizeSubject, "sub" claim'ini int64'e çevirir.
// Encode her zaman string yazar, ama başka bir üretici integer yazmış
// olabilir — JSON number'lar jwt.MapClaims'te float64 olarak gelir.
// Her iki biçim de kabul edilir; geri kalan her şey ErrInvalidSubject.
func normalizeSubject(sub any) (int64, error) {
	switch v := sub.(type) {
	case string:
		// Sadece rakamlardan oluşan string kabul edilir — "+5", "-5",
		// " 5" gibi biçimler reddedilir.
		if v == "" || !isDigits(v) {
			return 0, pkg.ErrInvalidSubject
		}
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, pkg.ErrInvalidSubject
		}
		return id, nil
	case float64:
		if v != math.Trunc(v) || v < 0 {
			return 0, pkg.ErrInvalidSubject
		}
		return int64(v), nil
	default:
		return 0, pkg.ErrInvalidSubject
	}
}

// isDigits, string'in sadece ASCII rakamlardan oluşup oluşmadığını kontrol eder.
func isDigits(s string) bool {
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
