package port

import "github.com/bnema/panemux/internal/domain/entity"

//go:generate mockery --name=ConfigSchemaProvider --with-expecter --output=mocks --outpkg=mocks --filename=mock_config_schema_provider.go

// ConfigSchemaProvider provides configuration schema information.
type ConfigSchemaProvider interface {
	// GetSchema returns all configuration keys with their metadata.
	GetSchema() []entity.ConfigKeyInfo
}
