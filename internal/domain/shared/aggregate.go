package shared

// BaseAggregateRoot extends BaseEntity with the version counter used for
// optimistic locking. Mutating operations bump the version so a stale
// writer loses the conditional UPDATE.
type BaseAggregateRoot struct {
	BaseEntity
	Version int `gorm:"not null;default:1"`
}

// IncrementVersion marks the aggregate as mutated since it was loaded.
func (a *BaseAggregateRoot) IncrementVersion() {
	a.Version++
}

// NewBaseAggregateRoot creates a base aggregate root at version 1.
func NewBaseAggregateRoot() BaseAggregateRoot {
	return BaseAggregateRoot{
		BaseEntity: NewBaseEntity(),
		Version:    1,
	}
}
