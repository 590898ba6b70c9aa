// Copyright (C) 2026 The GovGoose Authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package accesscontrol

import (
	"fmt"
	"log/slog"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
	"github.com/govgoose/govgoose/shared"
)

// users are granted a role inside a project domain
const rbacModel = `
[request_definition]
r = sub, dom, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub, r.dom) && r.obj == p.obj && r.act == p.act
`

const objectProject = "project"

var rolePermissions = map[models.ProjectRole][]shared.Action{
	models.ProjectRoleCollaborator: {shared.ActionRead, shared.ActionUpdate},
	models.ProjectRoleViewer:       {shared.ActionRead},
}

var _ shared.AccessControl = &casbinRBAC{}

type casbinRBAC struct {
	enforcer *casbin.SyncedEnforcer
}

func userSubject(userID string) string {
	return "user::" + userID
}

func roleSubject(role models.ProjectRole) string {
	return "role::" + string(role)
}

func projectDomain(projectID uuid.UUID) string {
	return "project::" + projectID.String()
}

func NewCasbinRBAC() (*casbinRBAC, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("could not parse rbac model: %w", err)
	}

	e, err := casbin.NewSyncedEnforcer(m)
	if err != nil {
		return nil, err
	}
	e.EnableLog(false)

	for role, actions := range rolePermissions {
		for _, action := range actions {
			if _, err := e.AddPolicy(roleSubject(role), objectProject, string(action)); err != nil {
				return nil, fmt.Errorf("could not add policy: %w", err)
			}
		}
	}

	return &casbinRBAC{enforcer: e}, nil
}

// NewCasbinRBACFromRepository builds the enforcer with the roles persisted in the project users table.
func NewCasbinRBACFromRepository(projectUserRepository shared.ProjectUserRepository) (*casbinRBAC, error) {
	rbac, err := NewCasbinRBAC()
	if err != nil {
		return nil, err
	}

	users, err := projectUserRepository.All()
	if err != nil {
		return nil, fmt.Errorf("could not load project users: %w", err)
	}
	if err := rbac.LoadPolicies(users); err != nil {
		return nil, err
	}
	slog.Info("access control policies loaded", "projectUsers", len(users))
	return rbac, nil
}

func (c *casbinRBAC) LoadPolicies(users []models.ProjectUser) error {
	for _, u := range users {
		if err := c.GrantRole(u.ProjectID, u.UserID, u.Role); err != nil {
			return err
		}
	}
	return nil
}

// GrantRole replaces any role the user had in the project.
func (c *casbinRBAC) GrantRole(projectID uuid.UUID, userID string, role models.ProjectRole) error {
	if !role.Valid() {
		return fmt.Errorf("invalid project role: %s", role)
	}
	if err := c.RevokeRoles(projectID, userID); err != nil {
		return err
	}
	_, err := c.enforcer.AddGroupingPolicy(userSubject(userID), roleSubject(role), projectDomain(projectID))
	return err
}

func (c *casbinRBAC) RevokeRoles(projectID uuid.UUID, userID string) error {
	_, err := c.enforcer.RemoveFilteredGroupingPolicy(0, userSubject(userID), "", projectDomain(projectID))
	return err
}

func (c *casbinRBAC) GetProjectRole(projectID uuid.UUID, userID string) (models.ProjectRole, bool) {
	roles := c.enforcer.GetRolesForUserInDomain(userSubject(userID), projectDomain(projectID))
	for _, r := range roles {
		for role := range rolePermissions {
			if r == roleSubject(role) {
				return role, true
			}
		}
	}
	return "", false
}

func (c *casbinRBAC) IsAllowed(project models.Project, userID string, action shared.Action) (bool, error) {
	if userID == "" {
		return false, nil
	}
	// the owner may do everything
	if project.OwnerID == userID {
		return true, nil
	}
	return c.enforcer.Enforce(userSubject(userID), projectDomain(project.ID), objectProject, string(action))
}
