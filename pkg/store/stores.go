package store

// Stores bundles one implementation of every store
type Stores struct {
	Users       UsersStore
	Secrets     SecretsStore
	Roles       RolesStore
	Permissions PermissionsStore
	Content     ContentStore
	Comments    CommentsStore
	Health      HealthStore
}
