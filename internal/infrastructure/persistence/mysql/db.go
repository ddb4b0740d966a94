package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookshop/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明:
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数(MaxOpenConns、MaxIdleConns、ConnMaxLifetime)
// 3. 开发环境开启SQL日志,生产环境关闭
// 4. 自动迁移表结构(AutoMigrate)
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info // 开发环境打印SQL
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	log.Println("✓ 数据库连接成功")

	// 自动迁移表结构(开发环境)
	// 注意:生产环境应使用版本化的迁移脚本,不要依赖AutoMigrate
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// 注意:这里使用GORM的模型定义(带tag),不是domain层的实体
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&AuthorModel{},
		&GenreModel{},
		&BookModel{},
		&CustomerModel{},
		&StoreModel{},
		&StoreBookModel{},
		&PurchaseModel{},
		&OperatorModel{},
	)
}

// =========================================
// GORM数据模型
// 设计说明:
// 1. infrastructure层的数据模型,包含GORM tag;domain层实体不依赖GORM
// 2. 名称列带UNIQUE索引,插入冲突由数据库兜底(应用层查重之外的保险)
// 3. 价格用int64存"分",避免浮点精度问题
// 4. 关系列存稳定ID而不是名称,改名不需要回写关联行
// =========================================

// AuthorModel 作者表
type AuthorModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:作者名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (AuthorModel) TableName() string {
	return "authors"
}

// GenreModel 分类表
type GenreModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:分类名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (GenreModel) TableName() string {
	return "genres"
}

// BookModel 图书表
type BookModel struct {
	ID        uint      `gorm:"primaryKey"`
	Title     string    `gorm:"uniqueIndex;size:200;not null;comment:书名"`
	AuthorID  uint      `gorm:"index;comment:作者ID"`
	GenreID   uint      `gorm:"index;comment:分类ID"`
	Price     int64     `gorm:"not null;comment:价格(分)"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (BookModel) TableName() string {
	return "books"
}

// CustomerModel 顾客表
type CustomerModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:顾客名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (CustomerModel) TableName() string {
	return "customers"
}

// StoreModel 门店表
type StoreModel struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"uniqueIndex;size:100;not null;comment:门店名"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

func (StoreModel) TableName() string {
	return "stores"
}

// StoreBookModel 门店书架关联表(多对多)
// 不加(store_id, book_id)联合唯一索引:重复分配在应用层拒绝,
// 库表保持与内存书架一行一条的镜像关系
type StoreBookModel struct {
	ID      uint `gorm:"primaryKey"`
	StoreID uint `gorm:"index;not null;comment:门店ID"`
	BookID  uint `gorm:"index;not null;comment:图书ID"`
}

func (StoreBookModel) TableName() string {
	return "store_books"
}

// PurchaseModel 购买记录表(顾客→图书,单向追加)
// 自增ID保留购买顺序,同一顾客可多次购买同名图书
type PurchaseModel struct {
	ID         uint      `gorm:"primaryKey"`
	CustomerID uint      `gorm:"index;not null;comment:顾客ID"`
	BookID     uint      `gorm:"index;not null;comment:图书ID"`
	CreatedAt  time.Time `gorm:"comment:购买时间"`
}

func (PurchaseModel) TableName() string {
	return "purchases"
}

// OperatorModel 后台操作员表
type OperatorModel struct {
	ID        uint           `gorm:"primaryKey"`
	Username  string         `gorm:"uniqueIndex;size:32;not null;comment:用户名"`
	Password  string         `gorm:"size:255;not null;comment:密码(bcrypt加密)"`
	Nickname  string         `gorm:"size:50;not null;comment:昵称"`
	CreatedAt time.Time      `gorm:"comment:创建时间"`
	UpdatedAt time.Time      `gorm:"comment:更新时间"`
	DeletedAt gorm.DeletedAt `gorm:"index;comment:删除时间(软删除)"`
}

func (OperatorModel) TableName() string {
	return "operators"
}
