// Package authz, yetkilendirme kurallarını tek bir yerde toplar.
//
// Authentication "kimsin?" sorusudur, authorization "bunu yapabilir misin?".
// Bu paket ikincisiyle ilgilenir ve sadece iki isimli kural tanır:
//
//   - OwnerOrAdmin: kaynağın sahibi veya admin olan herkes
//   - AdminOnly: sadece admin
//
// Kurallar handler/service içinde tek tek `if user.ID != ... && !user.IsAdmin`
// yazmak yerine buradan çağrılır — aynı kontrolün her call site'da yeniden
// türetilmesi zamanla birbirinden uzaklaşır (drift), burada uzaklaşamaz.
package authz

import (
	"github.com/akinalp/tarif/models"
	"github.com/akinalp/tarif/pkg"
)

// OwnerOrAdmin, kaynak sahibi veya admin olmayan herkes için ErrForbidden döner.
// ownerID, kaynağın sahibi olan kullanıcının id'sidir (ör. recipe.CreatedByID).
func OwnerOrAdmin(actor *models.User, ownerID int64) error {
	if actor == nil {
		return pkg.ErrForbidden
	}
	if actor.ID == ownerID || actor.IsAdmin {
		return nil
	}
	return pkg.ErrForbidden
}

// AdminOnly, admin olmayan herkes için ErrForbidden döner.
func AdminOnly(actor *models.User) error {
	if actor == nil || !actor.IsAdmin {
		return pkg.ErrForbidden
	}
	return nil
}
