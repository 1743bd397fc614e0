package metrics

import (
	"errors"
	"time"

	"magazine-catalog/internal/domain/entity"
)

// RecordArticlePublished records a successfully published article.
func RecordArticlePublished(category string) {
	ArticlesPublishedTotal.WithLabelValues(category).Inc()
}

// RecordValidationFailure records a rejected input for the given operation.
// The field label comes from the ValidationError in err's chain, or "unknown"
// when err carries none.
func RecordValidationFailure(operation string, err error) {
	field := "unknown"
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		field = validationErr.Field
	}
	ValidationFailuresTotal.WithLabelValues(operation, field).Inc()
}

// RecordOperationDuration records how long a catalog operation took.
func RecordOperationDuration(operation string, duration time.Duration) {
	OperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// UpdateGraphSize sets the size gauges to the current catalog counts.
func UpdateGraphSize(authors, magazines, articles int) {
	AuthorsTotal.Set(float64(authors))
	MagazinesTotal.Set(float64(magazines))
	ArticlesTotal.Set(float64(articles))
}
