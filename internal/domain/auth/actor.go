package auth

// Role 用户角色
// 角色在本核心中不可变（角色变更不在范围内）
type Role string

const (
	// RoleBuyer 买家：可以发表评论
	RoleBuyer Role = "buyer"
	// RoleSeller 卖家：可以上架/修改/下架自己的商品
	RoleSeller Role = "seller"
	// RoleAdmin 管理员：管理分类、删除评论
	RoleAdmin Role = "admin"
)

// Valid 判断角色是否合法
func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	}
	return false
}

// Actor 已认证的操作者
// 由认证中间件从Token中解析得到；匿名请求没有Actor（只能走只读接口）
type Actor struct {
	ID   uint
	Role Role
}
