package model

// All returns one value of every persisted model, parents before children.
// Tables are created in this order and dropped in reverse.
func All() []any {
	return []any{
		&Role{},
		&Permission{},
		&User{},
		&Secret{},
		&Content{},
		&Comment{},
		&RolePermission{},
		&UserRole{},
	}
}

// TableNames returns the table of every model in All, in the same order.
func TableNames() []string {
	return []string{
		Role{}.TableName(),
		Permission{}.TableName(),
		User{}.TableName(),
		Secret{}.TableName(),
		Content{}.TableName(),
		Comment{}.TableName(),
		RolePermission{}.TableName(),
		UserRole{}.TableName(),
	}
}
