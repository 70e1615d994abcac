package gorm

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/doodlesbykumbi/cms-in-go/pkg/model"
)

// junction names a join table read from one side.
type junction struct {
	table  string
	source string
	target string
}

var (
	rolePermissions = junction{table: "role_permission", source: "role_id", target: "permission_id"}
	permissionRoles = junction{table: "role_permission", source: "permission_id", target: "role_id"}
	roleUsers       = junction{table: "user_role", source: "role_id", target: "user_id"}
	userRoles       = junction{table: "user_role", source: "user_id", target: "role_id"}
)

// joinPair holds a source–target pair read from a join table.
type joinPair struct {
	SourceID uint
	TargetID uint
}

// queryJoinTable reads the (source, target) pairs of the junction where the
// source is one of sourceIDs.
func queryJoinTable(ctx context.Context, tx *gorm.DB, j junction, sourceIDs []uint) ([]joinPair, error) {
	if len(sourceIDs) == 0 {
		return nil, nil
	}

	var pairs []joinPair
	err := tx.WithContext(ctx).
		Table(j.table).
		Select(fmt.Sprintf("%s AS source_id, %s AS target_id", j.source, j.target)).
		Where(j.source+" IN ?", sourceIDs).
		Order(j.source).
		Order(j.target).
		Scan(&pairs).Error
	if err != nil {
		return nil, err
	}
	return pairs, nil
}

// uniqueTargets extracts deduplicated target ids, in first-seen order.
func uniqueTargets(pairs []joinPair) []uint {
	seen := make(map[uint]struct{}, len(pairs))
	result := make([]uint, 0, len(pairs))
	for _, p := range pairs {
		if _, ok := seen[p.TargetID]; !ok {
			seen[p.TargetID] = struct{}{}
			result = append(result, p.TargetID)
		}
	}
	return result
}

// groupBySource resolves every pair's target and groups them per source.
// Pairs whose target is missing from targets are skipped.
func groupBySource[T any](pairs []joinPair, targets map[uint]T) map[uint][]T {
	m := make(map[uint][]T)
	for _, p := range pairs {
		if target, ok := targets[p.TargetID]; ok {
			m[p.SourceID] = append(m[p.SourceID], target)
		}
	}
	return m
}

// loadThrough loads, for every source id, the rows of T linked to it through
// the junction. Targets are read once, restricted to columns when given.
func loadThrough[T any](ctx context.Context, tx *gorm.DB, j junction, sourceIDs []uint, key func(*T) uint, columns ...string) (map[uint][]T, error) {
	pairs, err := queryJoinTable(ctx, tx, j, sourceIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", j.table, err)
	}

	ids := uniqueTargets(pairs)
	if len(ids) == 0 {
		return map[uint][]T{}, nil
	}

	query := tx.WithContext(ctx)
	if len(columns) > 0 {
		query = query.Select(columns)
	}
	var rows []T
	if err := query.Where(j.target+" IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]T, len(rows))
	for i := range rows {
		byID[key(&rows[i])] = rows[i]
	}
	return groupBySource(pairs, byID), nil
}

func roleKey(r *model.Role) uint             { return r.RoleID }
func permissionKey(p *model.Permission) uint { return p.PermissionID }
func userKey(u *model.User) uint             { return u.UserID }
