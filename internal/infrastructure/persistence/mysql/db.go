package mysql

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/mall/internal/infrastructure/config"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. 开发环境开启SQL日志，生产环境关闭
// 4. 自动迁移表结构（AutoMigrate）
func NewDB(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.DSN()

	// 日志级别跟随log.level；debug模式强制打印SQL
	logLevel := logger.Silent
	switch cfg.Log.Level {
	case "debug":
		logLevel = logger.Info
	case "warn":
		logLevel = logger.Warn
	case "error":
		logLevel = logger.Error
	}
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
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

	// 配置连接池
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

	// 自动迁移表结构（开发环境）
	// 注意：生产环境应使用专门的迁移工具（如golang-migrate）
	if err := autoMigrate(db); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	return db, nil
}

// autoMigrate 自动迁移表结构
// AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CategoryModel{},
		&ProductModel{},
		&ReviewModel{},
	)
}

// =========================================
// GORM数据模型
// =========================================
// 设计说明：
// 1. 这是infrastructure层的数据模型，包含GORM tag；domain层的实体不依赖GORM
// 2. 软删除统一用显式的is_active列，而不是gorm.DeletedAt：
//    - "删除"只是把is_active置false，行必须永远保留且可被特殊路径读到
//      （比如评分重算需要排除的那条评论仍然在表里）
//    - 正常读路径通过scopeActive统一追加is_active=1过滤
// 3. Repository负责模型与领域实体之间的转换

// UserModel GORM用户模型
type UserModel struct {
	ID        uint      `gorm:"primaryKey"`
	Email     string    `gorm:"uniqueIndex;size:100;not null;comment:邮箱"`
	Password  string    `gorm:"size:255;not null;comment:密码（bcrypt加密）"`
	Nickname  string    `gorm:"size:50;not null;comment:昵称"`
	Role      string    `gorm:"size:10;not null;default:buyer;comment:角色(buyer/seller/admin)"`
	IsActive  bool      `gorm:"not null;default:1;comment:是否在线（软删除标记）"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// CategoryModel GORM分类模型
// ParentID是指向本表的弱引用（仅存ID），可空表示顶级分类
type CategoryModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"size:100;not null;comment:分类名称"`
	Description string    `gorm:"size:500;comment:分类描述"`
	ParentID    *uint     `gorm:"index;comment:父分类ID（可空）"`
	IsActive    bool      `gorm:"index;not null;default:1;comment:是否在线（软删除标记）"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel GORM商品模型
// 设计说明:
// 1. 价格使用int64存储"分"为单位
// 2. Rating是派生列：decimal(3,2)，由评论创建/删除在同一事务内重算写回
// 3. SellerID关联用户表，创建后不可变更
type ProductModel struct {
	ID          uint      `gorm:"primaryKey"`
	Name        string    `gorm:"index:idx_search;size:200;not null;comment:商品名称"`
	Description string    `gorm:"type:text;comment:商品描述"`
	Price       int64     `gorm:"index:idx_list;not null;comment:价格(分)"`
	Stock       int       `gorm:"default:0;comment:库存数量"`
	ImageURL    string    `gorm:"size:500;comment:商品图片URL"`
	CategoryID  uint      `gorm:"index;not null;comment:所属分类ID"`
	SellerID    uint      `gorm:"index;not null;comment:卖家用户ID"`
	Rating      float64   `gorm:"type:decimal(3,2);not null;default:0;comment:评分(在线评论打分均值)"`
	IsActive    bool      `gorm:"index;not null;default:1;comment:是否在线（软删除标记）"`
	CreatedAt   time.Time `gorm:"index:idx_list;comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ProductModel) TableName() string {
	return "products"
}

// ReviewModel GORM评论模型
// Grade列带CHECK约束兜底，应用层在触达存储前已拒绝越界打分
type ReviewModel struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null;comment:评论作者用户ID"`
	ProductID   uint      `gorm:"index;not null;comment:商品ID"`
	Grade       int       `gorm:"type:tinyint;not null;check:grade >= 1 AND grade <= 5;comment:打分(1-5)"`
	Comment     string    `gorm:"type:text;comment:评论内容"`
	CommentDate time.Time `gorm:"not null;comment:评论时间"`
	IsActive    bool      `gorm:"index;not null;default:1;comment:是否在线（软删除标记）"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
	UpdatedAt   time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}
