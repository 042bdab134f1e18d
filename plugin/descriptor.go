package plugin

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"

	"github.com/simbridge-dev/simbridge-sdk/domain/entities"
)

// DescriptorSchema generates the JSON schema (Draft 2020-12) of the plugin
// descriptor, for host-side tooling that validates plugin manifests.
func DescriptorSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(entities.PluginDescriptor{})

	jsonBytes, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal descriptor schema: %w", err)
	}
	return jsonBytes, nil
}
