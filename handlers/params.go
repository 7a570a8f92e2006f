package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/akinalp/tarif/pkg"
)

// pathID, r.PathValue ile gelen path parametresini int64'e çevirir.
// Sayısal olmayan değerler pkg.ErrBadRequest döner —
// route pattern'i eşleşti ama parametre anlamsız demektir.
func pathID(r *http.Request, name string) (int64, error) {
	raw := r.PathValue(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: invalid %s", pkg.ErrBadRequest, name)
	}
	return id, nil
}

// queryInt, query string'den int okur; yoksa veya bozuksa fallback döner.
func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

// queryTime, query string'den RFC3339 tarih okur; yoksa nil döner.
// Bozuk formatta hata döner — sessizce yok saymak filtreyi yanlış
// sonuçlarla "başarılı" gösterirdi.
func queryTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		// Tarih-only format da kabul edilir (2024-01-31 gibi)
		d, dErr := time.Parse("2006-01-02", raw)
		if dErr != nil {
			return nil, fmt.Errorf("%w: invalid %s, expected RFC3339 or YYYY-MM-DD", pkg.ErrBadRequest, name)
		}
		t = d
	}
	return &t, nil
}
