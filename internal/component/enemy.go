package component

// Enemy — маркер вражеской сущности.
type Enemy struct{}
