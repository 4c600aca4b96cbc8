package handler

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"particleapi/internal/model"
	"particleapi/internal/service"
	"particleapi/pkg/response"

	"github.com/gin-gonic/gin"
)

const healthTimeout = 2 * time.Second

// Handler 统一处理器
type Handler struct {
	particleService *service.ParticleService
}

// NewHandler 创建处理器实例
func NewHandler(particleService *service.ParticleService) *Handler {
	return &Handler{particleService: particleService}
}

// ParticleRequest 创建和更新的请求体
//
// 五个字段都必须出现，值可以是零值（例如 mass 为 0、空字符串）
type ParticleRequest struct {
	PartType *string `json:"part_type"`
	PartName *string `json:"part_name"`
	Mass     *int64  `json:"mass"`
	Charge   *string `json:"charge"`
	Spin     *string `json:"spin"`
}

func (r *ParticleRequest) toInput() (*model.ParticleInput, error) {
	switch {
	case r.PartType == nil:
		return nil, missingField("part_type")
	case r.PartName == nil:
		return nil, missingField("part_name")
	case r.Mass == nil:
		return nil, missingField("mass")
	case r.Charge == nil:
		return nil, missingField("charge")
	case r.Spin == nil:
		return nil, missingField("spin")
	}
	return &model.ParticleInput{
		PartType: *r.PartType,
		PartName: *r.PartName,
		Mass:     *r.Mass,
		Charge:   *r.Charge,
		Spin:     *r.Spin,
	}, nil
}

func missingField(name string) error {
	return fmt.Errorf("missing field `%s`", name)
}

// bindParticle 解析请求体，失败时已写入 400
func bindParticle(c *gin.Context) (*model.ParticleInput, bool) {
	var req ParticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid particle body: "+err.Error())
		return nil, false
	}
	in, err := req.toInput()
	if err != nil {
		response.BadRequest(c, "invalid particle body: "+err.Error())
		return nil, false
	}
	return in, true
}

// Welcome 存活探针
// GET /
func (h *Handler) Welcome(c *gin.Context) {
	c.String(200, "welcome!")
}

// ListParticles 查询全部粒子
// GET /particles
func (h *Handler) ListParticles(c *gin.Context) {
	particles, err := h.particleService.List(c.Request.Context())
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.JSON(c, particles)
}

// CreateParticle 新增粒子
// POST /particles
func (h *Handler) CreateParticle(c *gin.Context) {
	in, ok := bindParticle(c)
	if !ok {
		return
	}

	particle, err := h.particleService.Create(c.Request.Context(), in)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.JSON(c, particle)
}

// GetParticle 按 ID 查询，不存在时返回 null
// GET /particles/:id
func (h *Handler) GetParticle(c *gin.Context) {
	id, ok := particleID(c)
	if !ok {
		return
	}

	particle, err := h.particleService.Get(c.Request.Context(), id)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.JSON(c, particle)
}

// UpdateParticle 整体替换五个业务字段
// PUT /particles/:id
func (h *Handler) UpdateParticle(c *gin.Context) {
	id, ok := particleID(c)
	if !ok {
		return
	}

	in, ok := bindParticle(c)
	if !ok {
		return
	}

	// 记录不存在同样走 500
	particle, err := h.particleService.Update(c.Request.Context(), id, in)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.JSON(c, particle)
}

// DeleteParticle 返回删除行数
// DELETE /particles/:id
func (h *Handler) DeleteParticle(c *gin.Context) {
	id, ok := particleID(c)
	if !ok {
		return
	}

	count, err := h.particleService.Delete(c.Request.Context(), id)
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.JSON(c, count)
}

// Health 检查连接池可用
// GET /health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
	defer cancel()

	if err := h.particleService.Ping(ctx); err != nil {
		response.Unavailable(c, err)
		return
	}
	response.JSON(c, gin.H{"status": "ok"})
}

// particleID 解析路径参数，失败时已写入 400
func particleID(c *gin.Context) (int32, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid particle id: "+c.Param("id"))
		return 0, false
	}
	return int32(id), true
}
