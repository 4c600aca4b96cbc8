package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSON 成功响应直接输出数据本身，不包信封
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// ServerError 所有存储层错误统一 500，响应体为错误文本
//
// 错误同时挂到 gin.Context 上，由日志中间件输出
func ServerError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.String(http.StatusInternalServerError, err.Error())
}

// BadRequest 路径参数或请求体无法解析
func BadRequest(c *gin.Context, message string) {
	c.String(http.StatusBadRequest, message)
}

// Unavailable 健康检查失败
func Unavailable(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusServiceUnavailable, gin.H{
		"status": "unavailable",
		"error":  err.Error(),
	})
}
