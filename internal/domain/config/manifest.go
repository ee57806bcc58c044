// Package config loads the step manifest and engine settings. Secret
// material is never stored in the manifest: params reference process
// environment variables with ${VAR} and are expanded at load time.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/tedd-an/rigup/internal/domain/step"
	"github.com/tedd-an/rigup/internal/ports"
)

// Manifest is the declared set of provisioning steps, in declaration
// order. Order matters: the planner uses it as the tie-break between
// steps with no dependency edge.
type Manifest struct {
	Steps []StepSpec `yaml:"steps"`
}

// StepSpec is the YAML shape of one step declaration.
type StepSpec struct {
	ID        string            `yaml:"id"`
	Kind      string            `yaml:"kind"`
	Params    map[string]string `yaml:"params"`
	DependsOn []string          `yaml:"depends_on"`
	Secret    bool              `yaml:"secret"`
}

// ParseManifest parses manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Descriptors converts the manifest into validated step descriptors.
// ${VAR} references in param values are expanded from env; an unset
// variable expands to "" so that a missing token surfaces as the
// executor's SecretMissing error rather than a literal "${TOKEN}"
// leaking into a URL.
func (m *Manifest) Descriptors(env ports.Environment) ([]step.Descriptor, error) {
	descriptors := make([]step.Descriptor, 0, len(m.Steps))

	for i, spec := range m.Steps {
		kind, err := step.ParseKind(spec.Kind)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, spec.ID, err)
		}

		params := make(map[string]string, len(spec.Params))
		for k, v := range spec.Params {
			params[k] = expand(v, env)
		}

		d, err := step.NewDescriptor(spec.ID, kind, params)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}

		if len(spec.DependsOn) > 0 {
			deps := make([]step.ID, len(spec.DependsOn))
			for j, raw := range spec.DependsOn {
				dep, err := step.NewID(raw)
				if err != nil {
					return nil, fmt.Errorf("step %d (%s): depends_on: %w", i, spec.ID, err)
				}
				deps[j] = dep
			}
			d = d.WithDependsOn(deps...)
		}

		if spec.Secret || kind.RequiresSecret() {
			d = d.WithSecret()
		}

		descriptors = append(descriptors, d)
	}

	return descriptors, nil
}

// SecretValues collects the expanded secret params of secret-bearing
// steps, for seeding the redactor before anything is logged.
func (m *Manifest) SecretValues(env ports.Environment) []string {
	var values []string
	for _, spec := range m.Steps {
		if !spec.Secret && !step.Kind(spec.Kind).RequiresSecret() {
			continue
		}
		if raw, ok := spec.Params["token"]; ok {
			if v := expand(raw, env); v != "" {
				values = append(values, v)
			}
		}
	}
	return values
}

// expand substitutes ${VAR} and $VAR from the environment port.
func expand(value string, env ports.Environment) string {
	if env == nil {
		return os.Expand(value, func(string) string { return "" })
	}
	return os.Expand(value, func(name string) string {
		v, _ := env.Get(name)
		return v
	})
}
