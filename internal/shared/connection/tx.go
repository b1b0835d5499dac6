package connection

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// BindTx returns a session of db whose statements run on tx. A nil tx returns
// db unchanged.
func BindTx(db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db
	}
	bound := db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	bound.Statement.ConnPool = tx
	return bound
}
