// Package rules builds the flower-finder PrometheusRule resources:
// recording rules over the flowerfinder_* series and the alerts that
// page on them.
package rules

const (
	ruleAPIVersion = "monitoring.coreos.com/v1"
	ruleKind       = "PrometheusRule"

	// ruleSelector is the label the cluster Prometheus selects rule CRs by.
	ruleSelector = "system-rules-prometheus"
)

// PrometheusRule is the Prometheus Operator custom resource dashgen
// writes under deploy/.
type PrometheusRule struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   PrometheusRuleMetadata `yaml:"metadata"`
	Spec       PrometheusRuleSpec     `yaml:"spec"`
}

type PrometheusRuleMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

type PrometheusRuleSpec struct {
	Groups []RuleGroup `yaml:"groups"`
}

// RuleGroup is evaluated as a unit; Interval falls back to the
// Prometheus global evaluation interval when empty.
type RuleGroup struct {
	Name     string `yaml:"name"`
	Interval string `yaml:"interval,omitempty"`
	Rules    []Rule `yaml:"rules"`
}

// Rule sets exactly one of Record or Alert.
type Rule struct {
	Record      string            `yaml:"record,omitempty"`
	Alert       string            `yaml:"alert,omitempty"`
	Expr        string            `yaml:"expr"`
	For         string            `yaml:"for,omitempty"`
	Labels      map[string]string `yaml:"labels,omitempty"`
	Annotations map[string]string `yaml:"annotations,omitempty"`
}

// newPrometheusRule wraps a single group named group into a CR named name.
func newPrometheusRule(name, group string, rules []Rule) PrometheusRule {
	return PrometheusRule{
		APIVersion: ruleAPIVersion,
		Kind:       ruleKind,
		Metadata: PrometheusRuleMetadata{
			Name:   name,
			Labels: map[string]string{"prometheus": ruleSelector},
		},
		Spec: PrometheusRuleSpec{
			Groups: []RuleGroup{{Name: group, Rules: rules}},
		},
	}
}
