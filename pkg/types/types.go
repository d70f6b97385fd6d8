// Package domain defines the core types served by flower-finder.
package domain

// Flower is a flower document as stored in the flowers collection.
//
// JSON keys are the wire names used by existing clients. The storage id is
// not part of the type.
type Flower struct {
	FlowerName          string `json:"flowername"     yaml:"flowername"`
	FlowerNameLocalized string `json:"flowername_kr"  yaml:"flowername_kr"`
	Habitat             string `json:"habitat"        yaml:"habitat"`
	BinomialName        string `json:"binomialName"   yaml:"binomialName"`
	Classification      string `json:"classification" yaml:"classification"`
}
