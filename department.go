package tracker

// Department is an organizational unit containing roles.
type Department struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(30);not null"`
}

func (Department) TableName() string {
	return "department"
}
