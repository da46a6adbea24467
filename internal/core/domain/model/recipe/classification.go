package recipe

import (
	"fmt"
	"strings"

	"bistro/internal/pkg/errs"
)

// Classification labels the cuisine a recipe belongs to.
// It is a value object used for display and menu grouping; it carries
// no behaviour beyond validation and string conversion.
type Classification int

const (
	// Unknown represents an invalid or undefined classification.
	// This value (0) helps catch uninitialized Classification values.
	Unknown Classification = iota

	// Italian cuisine.
	Italian

	// Mexican cuisine.
	Mexican

	// Chinese cuisine.
	Chinese

	// Indian cuisine.
	Indian

	// American cuisine.
	American

	// French cuisine.
	French

	// Other covers every cuisine without a dedicated label.
	Other
)

// getClassificationStrings returns a map of Classification values to their string representations.
// All classifications are included for string conversion.
func getClassificationStrings() map[Classification]string {
	return map[Classification]string{
		Unknown:  "Unknown",
		Italian:  "Italian",
		Mexican:  "Mexican",
		Chinese:  "Chinese",
		Indian:   "Indian",
		American: "American",
		French:   "French",
		Other:    "Other",
	}
}

// getValidClassificationStrings returns a map of only valid Classification values.
// Only valid classifications are included to support validation.
func getValidClassificationStrings() map[Classification]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Classification]string{
		Italian:  "Italian",
		Mexican:  "Mexican",
		Chinese:  "Chinese",
		Indian:   "Indian",
		American: "American",
		French:   "French",
		Other:    "Other",
	}
}

// Validate checks if the Classification value is valid.
//
// Valid classifications are: Italian, Mexican, Chinese, Indian, American, French, Other.
// Unknown (0) and any other values are invalid.
//
// Returns:
//   - nil if the classification is valid
//   - error with details if the classification is invalid
func (c Classification) Validate() error {
	if _, ok := getValidClassificationStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"classification is invalid",
			fmt.Errorf("%d is not a valid classification", c),
		)
	}
	return nil
}

// String returns the human-readable name of the classification.
//
// Returns:
//   - The cuisine name for valid classifications
//   - "Unknown" for invalid classification values
//
// This method implements the fmt.Stringer interface and is safe
// to call on any Classification value, including invalid ones.
func (c Classification) String() string {
	if str, ok := getClassificationStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// ClassificationFromString parses a cuisine name into a Classification.
// Matching is case-insensitive. This function is typically used when
// reconstructing recipes from configuration or API payloads.
//
// Returns:
//   - Classification: The matching classification
//   - error: Validation error if the name matches no known cuisine
//
// Example:
//
//	cuisine, err := recipe.ClassificationFromString("italian")
//	// cuisine == recipe.Italian
func ClassificationFromString(s string) (Classification, error) {
	for classification, name := range getValidClassificationStrings() {
		if strings.EqualFold(name, s) {
			return classification, nil
		}
	}

	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"classification is invalid",
		fmt.Errorf("%q is not a valid classification", s),
	)
}
