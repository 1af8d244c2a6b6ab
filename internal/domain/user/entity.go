package user

import (
	"time"

	"github.com/xiebiao/mall/internal/domain/auth"
)

// User 用户实体（聚合根）
// DDD设计说明：
// 1. 密码已加密存储（bcrypt），不应该有GetPassword()等方法暴露明文
// 2. Role决定用户能执行的写操作（买家评论、卖家管理商品、管理员管理分类），
//    注册时确定，本核心内不可变更
// 3. 领域实体不依赖GORM tag（infrastructure层的Repository实现时会处理映射）
type User struct {
	ID        uint
	Email     string
	Password  string // bcrypt哈希值
	Nickname  string
	Role      auth.Role
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(email, hashedPassword, nickname string, role auth.Role) *User {
	now := time.Now()
	return &User{
		Email:     email,
		Password:  hashedPassword,
		Nickname:  nickname,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Actor 返回用于授权判定的操作者视图
func (u *User) Actor() auth.Actor {
	return auth.Actor{ID: u.ID, Role: u.Role}
}

// UpdateNickname 更新昵称（领域行为）
func (u *User) UpdateNickname(nickname string) {
	u.Nickname = nickname
	u.UpdatedAt = time.Now()
}
