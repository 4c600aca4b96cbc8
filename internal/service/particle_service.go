package service

import (
	"context"
	"fmt"

	"particleapi/internal/model"
	"particleapi/internal/repository"

	"gorm.io/gorm"
)

// ParticleService 每次调用从连接池独占取出一个连接，执行一次仓储操作后归还
type ParticleService struct {
	particleRepo *repository.ParticleRepository
	db           *gorm.DB
}

func NewParticleService(db *gorm.DB) *ParticleService {
	return &ParticleService{
		particleRepo: repository.NewParticleRepository(db),
		db:           db,
	}
}

// withConn 取连接失败同样作为错误返回
func (s *ParticleService) withConn(ctx context.Context, fn func(conn *gorm.DB) error) error {
	return s.db.WithContext(ctx).Connection(fn)
}

func (s *ParticleService) List(ctx context.Context) ([]*model.Particle, error) {
	var particles []*model.Particle
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		particles, err = s.particleRepo.FindAll(ctx, conn)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list particles: %w", err)
	}
	return particles, nil
}

// Get 不存在时返回 nil, nil
func (s *ParticleService) Get(ctx context.Context, id int32) (*model.Particle, error) {
	var particle *model.Particle
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		particle, err = s.particleRepo.FindByID(ctx, conn, id)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get particle %d: %w", id, err)
	}
	return particle, nil
}

func (s *ParticleService) Create(ctx context.Context, in *model.ParticleInput) (*model.Particle, error) {
	var particle *model.Particle
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		particle, err = s.particleRepo.Create(ctx, conn, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create particle: %w", err)
	}
	return particle, nil
}

// Update 记录不存在时返回包装后的 repository.ErrParticleNotFound
func (s *ParticleService) Update(ctx context.Context, id int32, in *model.ParticleInput) (*model.Particle, error) {
	var particle *model.Particle
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		particle, err = s.particleRepo.Update(ctx, conn, id, in)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("update particle %d: %w", id, err)
	}
	return particle, nil
}

func (s *ParticleService) Delete(ctx context.Context, id int32) (int64, error) {
	var count int64
	err := s.withConn(ctx, func(conn *gorm.DB) error {
		var err error
		count, err = s.particleRepo.Delete(ctx, conn, id)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("delete particle %d: %w", id, err)
	}
	return count, nil
}

// Ping 健康检查
func (s *ParticleService) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
