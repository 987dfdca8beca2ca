package ensemble

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/yourusername/footy-edge/internal/models"
)

// FeatureSpec describes one schema position: the feature's name and the
// training-time default imputed when a context omits it. A Required
// feature has no usable default and fails the request instead.
type FeatureSpec struct {
	Name     string
	Default  float64
	Required bool
}

// DefaultFeatureSpecs is the schema the bundled estimators are built
// against: relative strengths default to league average, form to neutral.
func DefaultFeatureSpecs() []FeatureSpec {
	return []FeatureSpec{
		{Name: models.FeatureHomeAttack, Default: 1.0},
		{Name: models.FeatureHomeDefense, Default: 1.0},
		{Name: models.FeatureAwayAttack, Default: 1.0},
		{Name: models.FeatureAwayDefense, Default: 1.0},
		{Name: models.FeatureHomeForm, Default: 0.5},
		{Name: models.FeatureAwayForm, Default: 0.5},
		{Name: models.FeatureEloDiff, Default: 0.0},
	}
}

// Imputer vectorizes a named feature map into a fixed schema order,
// filling missing and non-numeric values from the training-time defaults.
type Imputer struct {
	specs  []FeatureSpec
	logger *logrus.Logger
	warn   rate.Sometimes
}

// NewImputer creates an imputer for the given schema.
func NewImputer(specs []FeatureSpec, logger *logrus.Logger) *Imputer {
	return &Imputer{
		specs:  specs,
		logger: logger,
		warn:   rate.Sometimes{First: 3, Interval: time.Minute},
	}
}

// Vectorize maps the named features into schema order. Missing, NaN, and
// infinite values impute from the defaults; a missing Required feature
// fails with ErrInvalidInput. The imputed count is returned for
// observability.
func (im *Imputer) Vectorize(features map[string]float64) ([]float64, int, error) {
	vec := make([]float64, len(im.specs))
	imputed := 0

	for i, spec := range im.specs {
		v, ok := features[spec.Name]
		if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
			if spec.Required {
				return nil, 0, fmt.Errorf("%w: required feature %q missing with no usable default",
					models.ErrInvalidInput, spec.Name)
			}
			vec[i] = spec.Default
			imputed++
			continue
		}
		vec[i] = v
	}

	if imputed > 0 {
		im.warn.Do(func() {
			im.logger.WithFields(logrus.Fields{
				"imputed": imputed,
				"total":   len(im.specs),
			}).Warn("Imputed missing feature values")
		})
	}

	return vec, imputed, nil
}

// Names returns the schema's feature order.
func (im *Imputer) Names() []string {
	names := make([]string, len(im.specs))
	for i, spec := range im.specs {
		names[i] = spec.Name
	}
	return names
}

// Size returns the schema length.
func (im *Imputer) Size() int {
	return len(im.specs)
}
