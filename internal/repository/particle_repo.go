package repository

import (
	"context"
	"errors"

	"particleapi/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrParticleNotFound = errors.New("particle not found")

// ParticleRepository 每个方法只执行一条 SQL
//
// conn 为调用方已经取得的连接（gorm.DB.Connection 中的 tx），为 nil 时使用连接池
type ParticleRepository struct {
	db *gorm.DB
}

func NewParticleRepository(db *gorm.DB) *ParticleRepository {
	return &ParticleRepository{db: db}
}

func (r *ParticleRepository) conn(conn *gorm.DB) *gorm.DB {
	if conn == nil {
		return r.db
	}
	return conn
}

// FindAll 全表扫描，按存储顺序返回
func (r *ParticleRepository) FindAll(ctx context.Context, conn *gorm.DB) ([]*model.Particle, error) {
	particles := make([]*model.Particle, 0)
	if err := r.conn(conn).WithContext(ctx).Find(&particles).Error; err != nil {
		return nil, err
	}
	return particles, nil
}

// FindByID 记录不存在时返回 nil, nil
func (r *ParticleRepository) FindByID(ctx context.Context, conn *gorm.DB, id int32) (*model.Particle, error) {
	var particle model.Particle
	err := r.conn(conn).WithContext(ctx).Where("part_id = ?", id).First(&particle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &particle, nil
}

// Create created_at 与 updated_at 使用同一时刻
func (r *ParticleRepository) Create(ctx context.Context, conn *gorm.DB, in *model.ParticleInput) (*model.Particle, error) {
	now := model.Now()
	particle := &model.Particle{
		PartType:  in.PartType,
		PartName:  in.PartName,
		Mass:      in.Mass,
		Charge:    in.Charge,
		Spin:      in.Spin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.conn(conn).WithContext(ctx).Create(particle).Error; err != nil {
		return nil, err
	}
	return particle, nil
}

// Update 整体替换五个业务字段并刷新 updated_at，created_at 不变
//
// UPDATE ... RETURNING * 一条语句完成，没有匹配行时返回 ErrParticleNotFound
func (r *ParticleRepository) Update(ctx context.Context, conn *gorm.DB, id int32, in *model.ParticleInput) (*model.Particle, error) {
	var particle model.Particle
	result := r.conn(conn).WithContext(ctx).
		Model(&particle).
		Clauses(clause.Returning{}).
		Where("part_id = ?", id).
		Updates(map[string]interface{}{
			"part_type":  in.PartType,
			"part_name":  in.PartName,
			"mass":       in.Mass,
			"charge":     in.Charge,
			"spin":       in.Spin,
			"updated_at": model.Now(),
		})

	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, ErrParticleNotFound
	}

	return &particle, nil
}

// Delete 物理删除，返回删除行数（0 或 1），0 不算错误
func (r *ParticleRepository) Delete(ctx context.Context, conn *gorm.DB, id int32) (int64, error) {
	result := r.conn(conn).WithContext(ctx).
		Where("part_id = ?", id).
		Delete(&model.Particle{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
