package auth

import (
	apperrors "github.com/xiebiao/mall/pkg/errors"
)

// Action 需要授权的写操作
// 只读接口对所有人开放（含匿名），不在此枚举
type Action string

const (
	ActionCategoryCreate Action = "category:create"
	ActionCategoryUpdate Action = "category:update"
	ActionCategoryDelete Action = "category:delete"
	ActionProductCreate  Action = "product:create"
	ActionProductUpdate  Action = "product:update"
	ActionProductDelete  Action = "product:delete"
	ActionReviewCreate   Action = "review:create"
	ActionReviewDelete   Action = "review:delete"
)

// permissions 角色权限表
// 设计说明：
// 1. 权限集中在一张表里，而不是散落在各Handler的if判断中，便于独立测试
// 2. 分类管理收归admin（原型中分类接口没有角色限制，这里显式收紧）
// 3. 商品的update/delete除角色外还要求归属校验，见AuthorizeOwner
var permissions = map[Action][]Role{
	ActionCategoryCreate: {RoleAdmin},
	ActionCategoryUpdate: {RoleAdmin},
	ActionCategoryDelete: {RoleAdmin},
	ActionProductCreate:  {RoleSeller},
	ActionProductUpdate:  {RoleSeller},
	ActionProductDelete:  {RoleSeller},
	ActionReviewCreate:   {RoleBuyer},
	ActionReviewDelete:   {RoleAdmin},
}

// Authorize 校验操作者是否有权执行指定操作
// 授权必须在任何读写存储之前完成：被拒绝的请求不产生任何可观察的副作用
func Authorize(actor Actor, action Action) error {
	allowed, ok := permissions[action]
	if !ok {
		return apperrors.ErrForbidden
	}
	for _, r := range allowed {
		if actor.Role == r {
			return nil
		}
	}
	return apperrors.ErrForbidden
}

// AuthorizeOwner 在角色校验之外追加归属校验
// 用于卖家操作自己的商品：seller_id必须与操作者ID严格相等
// 归属不符返回Forbidden而不是NotFound——资源存在且可见，只是不允许当前操作者改动
func AuthorizeOwner(actor Actor, action Action, ownerID uint) error {
	if err := Authorize(actor, action); err != nil {
		return err
	}
	if actor.ID != ownerID {
		return apperrors.ErrForbidden
	}
	return nil
}
