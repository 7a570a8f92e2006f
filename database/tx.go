// Package database — Transaction yönetimi.
//
// WithTx, birden fazla DB operasyonunun atomik (all-or-nothing) çalışmasını
// sağlar: hepsi başarılı → COMMIT, herhangi biri başarısız → ROLLBACK.
//
// Repository'ler ile kullanım:
// Repository'ler TxQuerier interface'i alır — hem *sql.DB hem *sql.Tx bu
// interface'i karşılar. Transaction gereken service, WithTx içinde aynı
// repository constructor'ını tx ile çağırıp tx-scoped bir kopya kullanır:
//
//	err := database.WithTx(ctx, s.db, func(tx *sql.Tx) error {
//	    txRepo := repository.NewSQLiteRecipeRepo(tx)
//	    if err := txRepo.Create(ctx, recipe); err != nil {
//	        return err // → ROLLBACK
//	    }
//	    return txRepo.AttachTag(ctx, recipe.ID, tagID) // nil → COMMIT
//	})
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// TxQuerier, hem *sql.DB hem *sql.Tx tarafından karşılanan interface.
// database/sql bu interface'i tanımlamaz — biz tanımlarız, Go'nun implicit
// interface'leri sayesinde her ikisi de otomatik karşılar.
type TxQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx, verilen fonksiyonu bir SQL transaction içinde çalıştırır.
//
// fn panic atarsa da ROLLBACK garanti edilir (recover + re-panic) —
// aksi halde transaction açık kalır ve DB lock'a neden olabilir.
func WithTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) (err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				err = fmt.Errorf("%w (rollback also failed: %v)", err, rbErr)
			}
			return
		}

		if commitErr := tx.Commit(); commitErr != nil {
			err = fmt.Errorf("failed to commit transaction: %w", commitErr)
		}
	}()

	err = fn(tx)
	return
}
