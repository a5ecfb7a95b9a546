package services

import (
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLog は単一のリクエストログを表します。
type RequestLog struct {
	Timestamp    time.Time     `json:"timestamp"`
	Path         string        `json:"path"`
	Method       string        `json:"method"`
	StatusCode   int           `json:"status_code"`
	ResponseTime time.Duration `json:"response_time"`
}

// MonitoringService はAPIのモニタリング機能を提供します。
type MonitoringService struct {
	logs []RequestLog
	mu   sync.RWMutex
}

// NewMonitoringService は新しいMonitoringServiceを生成します。
func NewMonitoringService() *MonitoringService {
	return &MonitoringService{
		logs: make([]RequestLog, 0),
	}
}

// LogRequest はリクエストを記録します。
func (s *MonitoringService) LogRequest(entry RequestLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logs = append(s.logs, entry)
}

// LoggingMiddleware はリクエスト情報を記録するGinミドルウェアです。
func (s *MonitoringService) LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		// 管理・モニタリング系のパスは集計から除外
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/api/v1/admin") || strings.HasPrefix(path, "/api/v1/monitoring") {
			return
		}

		s.LogRequest(RequestLog{
			Timestamp:    start,
			Path:         path,
			Method:       c.Request.Method,
			StatusCode:   c.Writer.Status(),
			ResponseTime: time.Since(start),
		})
	}
}

// DashboardData はダッシュボードに表示するための集計済みデータです。
type DashboardData struct {
	TotalRequests    int              `json:"total_requests"`
	Endpoints        map[string]int   `json:"endpoints"`
	StatusCodes      map[string]int   `json:"status_codes"`
	AvgResponseTimes map[string]int64 `json:"avg_response_times"` // エンドポイント別平均応答時間（ミリ秒）
	RecentErrors     []RequestLog     `json:"recent_errors"`
}

// GetDashboardData は指定された期間のログを集計してダッシュボード用データを返します。
func (s *MonitoringService) GetDashboardData(periodHours int) DashboardData {
	s.mu.RLock()
	defer s.mu.RUnlock()

	since := time.Now().Add(-time.Duration(periodHours) * time.Hour)

	filtered := make([]RequestLog, 0, len(s.logs))
	for _, entry := range s.logs {
		if entry.Timestamp.After(since) {
			filtered = append(filtered, entry)
		}
	}

	endpoints := make(map[string]int)
	statusCodes := map[string]int{
		"2xx Success":      0,
		"4xx Client Error": 0,
		"5xx Server Error": 0,
	}
	responseTimeSum := make(map[string]time.Duration)

	for _, entry := range filtered {
		endpoints[entry.Path]++
		responseTimeSum[entry.Path] += entry.ResponseTime

		switch {
		case entry.StatusCode >= 200 && entry.StatusCode < 300:
			statusCodes["2xx Success"]++
		case entry.StatusCode >= 400 && entry.StatusCode < 500:
			statusCodes["4xx Client Error"]++
		case entry.StatusCode >= 500:
			statusCodes["5xx Server Error"]++
		}
	}

	avgResponseTimes := make(map[string]int64)
	for path, total := range responseTimeSum {
		avgResponseTimes[path] = total.Milliseconds() / int64(endpoints[path])
	}

	// 直近のサーバーエラーを新しい順に最大10件
	recentErrors := make([]RequestLog, 0, 10)
	for i := len(filtered) - 1; i >= 0 && len(recentErrors) < 10; i-- {
		if filtered[i].StatusCode >= 500 {
			recentErrors = append(recentErrors, filtered[i])
		}
	}

	return DashboardData{
		TotalRequests:    len(filtered),
		Endpoints:        endpoints,
		StatusCodes:      statusCodes,
		AvgResponseTimes: avgResponseTimes,
		RecentErrors:     recentErrors,
	}
}
