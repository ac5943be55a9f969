// Package gorm implements the store interfaces using GORM against
// PostgreSQL. The implementations hold a *gorm.DB injected at startup and
// are safe for concurrent use.
package gorm
