package shared

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/govgoose/govgoose/database/models"
)

func GetSession(ctx Context) AuthSession {
	s, ok := ctx.Get("session").(AuthSession)
	if !ok {
		return NoSession
	}
	return s
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func IsAuthenticated(ctx Context) bool {
	return GetSession(ctx).GetUserID() != ""
}

func GetProject(ctx Context) models.Project {
	return ctx.Get("project").(models.Project)
}

func SetProject(ctx Context, project models.Project) {
	ctx.Set("project", project)
}

func GetUUIDParam(ctx Context, param string) (uuid.UUID, error) {
	v := SanitizeParam(ctx.Param(param))
	if v == "" {
		return uuid.Nil, fmt.Errorf("missing %s", param)
	}
	return uuid.Parse(v)
}
