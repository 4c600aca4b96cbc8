package model

// Particle 粒子表
// 记录一种基本粒子的静态描述属性，mass 的单位由调用方约定，这里只当作整数存储
type Particle struct {
	PartID    int32     `gorm:"column:part_id;primaryKey;autoIncrement" json:"part_id"`
	PartType  string    `gorm:"column:part_type;type:varchar;not null" json:"part_type"`
	PartName  string    `gorm:"column:part_name;type:varchar;not null" json:"part_name"`
	Mass      int64     `gorm:"column:mass;not null" json:"mass"`
	Charge    string    `gorm:"column:charge;type:varchar;not null" json:"charge"` // 例如 2/3、-1、0
	Spin      string    `gorm:"column:spin;type:varchar;not null" json:"spin"`
	CreatedAt Timestamp `gorm:"column:created_at;not null" json:"created_at"`
	UpdatedAt Timestamp `gorm:"column:updated_at;not null" json:"updated_at"`
}

func (Particle) TableName() string {
	return "particles"
}

// ParticleInput 创建和更新使用的五个业务字段，整体替换，不支持部分更新
type ParticleInput struct {
	PartType string `json:"part_type"`
	PartName string `json:"part_name"`
	Mass     int64  `json:"mass"`
	Charge   string `json:"charge"`
	Spin     string `json:"spin"`
}
