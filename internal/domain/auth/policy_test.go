package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/xiebiao/mall/pkg/errors"
)

// TestAuthorize_RoleMatrix 逐项校验角色权限表
func TestAuthorize_RoleMatrix(t *testing.T) {
	cases := []struct {
		name    string
		role    Role
		action  Action
		allowed bool
	}{
		{"管理员创建分类", RoleAdmin, ActionCategoryCreate, true},
		{"管理员更新分类", RoleAdmin, ActionCategoryUpdate, true},
		{"管理员删除分类", RoleAdmin, ActionCategoryDelete, true},
		{"卖家不能创建分类", RoleSeller, ActionCategoryCreate, false},
		{"买家不能删除分类", RoleBuyer, ActionCategoryDelete, false},
		{"卖家上架商品", RoleSeller, ActionProductCreate, true},
		{"买家不能上架商品", RoleBuyer, ActionProductCreate, false},
		{"管理员不能上架商品", RoleAdmin, ActionProductCreate, false},
		{"买家发表评论", RoleBuyer, ActionReviewCreate, true},
		{"卖家不能发表评论", RoleSeller, ActionReviewCreate, false},
		{"管理员删除评论", RoleAdmin, ActionReviewDelete, true},
		{"买家不能删除评论", RoleBuyer, ActionReviewDelete, false},
		{"卖家不能删除评论", RoleSeller, ActionReviewDelete, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Authorize(Actor{ID: 1, Role: tc.role}, tc.action)
			if tc.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, apperrors.IsForbidden(err), "应返回Forbidden, 实际: %v", err)
			}
		})
	}
}

// TestAuthorizeOwner 归属校验：卖家只能操作自己的商品
func TestAuthorizeOwner(t *testing.T) {
	seller := Actor{ID: 7, Role: RoleSeller}

	t.Run("本人操作自己的商品", func(t *testing.T) {
		assert.NoError(t, AuthorizeOwner(seller, ActionProductUpdate, 7))
	})

	t.Run("操作他人商品返回Forbidden", func(t *testing.T) {
		err := AuthorizeOwner(seller, ActionProductDelete, 8)
		assert.True(t, apperrors.IsForbidden(err))
		// Forbidden与NotFound必须可区分：资源存在，只是无权改动
		assert.False(t, apperrors.IsNotFound(err))
	})

	t.Run("角色不符时归属一致也拒绝", func(t *testing.T) {
		buyer := Actor{ID: 7, Role: RoleBuyer}
		err := AuthorizeOwner(buyer, ActionProductUpdate, 7)
		assert.True(t, apperrors.IsForbidden(err))
	})
}

// TestAuthorize_UnknownAction 未登记的操作一律拒绝
func TestAuthorize_UnknownAction(t *testing.T) {
	err := Authorize(Actor{ID: 1, Role: RoleAdmin}, Action("order:create"))
	assert.True(t, apperrors.IsForbidden(err))
}

// TestRole_Valid 角色合法性
func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleBuyer.Valid())
	assert.True(t, RoleSeller.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("root").Valid())
	assert.False(t, Role("").Valid())
}
