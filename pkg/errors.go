// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir. errors.New() ile sabit error
// değişkenleri tanımlarız; karşılaştırma string yerine errors.Is ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import (
	"errors"
	"fmt"
)

// Domain-level error'lar.
// Handler katmanı bu error'ları HTTP status code'larına map'ler.
// Service katmanı bunları döner, handler yakalar.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)

// Token doğrulama error'ları — hepsi ErrUnauthorized'ı wrap'ler, yani
// HTTP'ye her zaman 401 olarak yansır ama errors.Is ile ayırt edilebilirler.
//
// Bu ayrım SADECE refresh akışında kullanıcıya gösterilir: orada client'ın
// "yeniden login ol" ile "tekrar dene" arasında karar vermesi gerekir.
// Access token doğrulamasında ise tüm sebepler tek bir ErrUnauthorized'a
// indirgenir — hangi kontrolün başarısız olduğu dışarı sızdırılmaz.
var (
	ErrInvalidToken        = fmt.Errorf("%w: invalid token", ErrUnauthorized)
	ErrInvalidRefreshToken = fmt.Errorf("%w: invalid refresh token", ErrUnauthorized)
	ErrWrongTokenType      = fmt.Errorf("%w: invalid token type", ErrUnauthorized)
	ErrMissingSubject      = fmt.Errorf("%w: token missing subject", ErrUnauthorized)
	ErrInvalidSubject      = fmt.Errorf("%w: invalid subject in token", ErrUnauthorized)
	ErrUserNotFound        = fmt.Errorf("%w: user not found", ErrUnauthorized)
)
