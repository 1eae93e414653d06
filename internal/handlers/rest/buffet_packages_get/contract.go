package buffet_packages_get

import (
	"restaurant/internal/entities"
	"restaurant/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Packages() []entities.BuffetPackage
}
