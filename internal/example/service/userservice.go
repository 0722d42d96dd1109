package service

import (
	"context"

	"github.com/mangohow/minerva"
	"github.com/mangohow/minerva/db/field"
	dbfield "github.com/mangohow/minerva/internal/example/db/field"
	"github.com/mangohow/minerva/internal/example/model"
)

// UserService 演示基于字段描述符的常用查询封装
type UserService struct {
	users minerva.Service[model.User]
	depts minerva.Service[model.Dept]
}

func NewUserService(users minerva.Service[model.User], depts minerva.Service[model.Dept]) *UserService {
	return &UserService{
		users: users,
		depts: depts,
	}
}

// ListByDeptId 查询部门下的所有用户
func (s *UserService) ListByDeptId(ctx context.Context, deptId int64) ([]*model.User, error) {
	return minerva.FindByFieldEqTargetField(ctx, dbfield.UserFields.DeptId, deptId, s.users)
}

// FindByUsernameAndDept 按用户名和部门查询
func (s *UserService) FindByUsernameAndDept(ctx context.Context, username string, deptId int64) ([]*model.User, error) {
	return minerva.FindByFieldEqTargetFields(ctx, map[*field.Field[model.User]]any{
		dbfield.UserFields.Username: username,
		dbfield.UserFields.DeptId:   deptId,
	}, s.users)
}

// DeptsOfUsers 查询用户集合涉及的部门, 用户为空时不访问数据库
func (s *UserService) DeptsOfUsers(ctx context.Context, users []*model.User) ([]*model.Dept, error) {
	return minerva.FindByFieldInTargetField(ctx, users, s.depts,
		func(u *model.User) any { return u.DeptId },
		dbfield.DeptFields.Id)
}

// ListVOByDeptId 查询部门下的用户并转换为VO
func (s *UserService) ListVOByDeptId(ctx context.Context, deptId int64) ([]*model.UserVO, error) {
	users, err := s.ListByDeptId(ctx, deptId)
	if err != nil {
		return nil, err
	}

	return minerva.ConvertList[model.UserVO](users)
}
