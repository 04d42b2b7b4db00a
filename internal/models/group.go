package models

// Group is an admin-managed role label. Permission checks never read it;
// they run on the User flags.
type Group struct {
	ID   int64  `json:"id" gorm:"primaryKey;autoIncrement"`
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

func (Group) TableName() string {
	return "groups"
}
