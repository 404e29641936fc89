package database

import (
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormopentracing "gorm.io/plugin/opentracing"

	"vidtube.com/cmd/model"
	"vidtube.com/config"
	"vidtube.com/pkg/utils"
)

// Options returns the gorm settings shared by the server and the tests.
// TranslateError lets the dal layers see gorm.ErrDuplicatedKey instead of
// driver specific errors.
func Options() *gorm.Config {
	return &gorm.Config{
		PrepareStmt:                              true,
		SkipDefaultTransaction:                   true,
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	}
}

// Open connects to MySQL with the tracing plugin installed and migrates the
// schema.
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(utils.GetMysqlDsn()), Options())
	if err != nil {
		return nil, errors.Wrap(err, "open mysql")
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		return nil, errors.Wrap(err, "install gorm tracing")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(config.ConfigInfo.Mysql.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.ConfigInfo.Mysql.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	logrus.Info("Starting tables migration...")
	if err := db.AutoMigrate(model.All()...); err != nil {
		logrus.Errorf("Failed to migrate tables: %v", err)
		return errors.Wrap(err, "auto migrate")
	}
	logrus.Info("Tables migration completed successfully")
	return nil
}
