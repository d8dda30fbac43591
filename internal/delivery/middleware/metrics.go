package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
)

// unmatchedRoute labels requests that hit no registered route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// HTTPObserver records request latency by route template.
type HTTPObserver interface {
	ObserveHTTP(method, route, status string, elapsed time.Duration)
}

type MetricsMiddleware struct {
	observer HTTPObserver
}

func NewMetricsMiddleware(observer HTTPObserver) *MetricsMiddleware {
	return &MetricsMiddleware{observer: observer}
}

// Handle commits error responses itself so the observed status is final.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}
		m.observer.ObserveHTTP(c.Request().Method, route, strconv.Itoa(c.Response().Status), time.Since(start))

		return err
	}
}
