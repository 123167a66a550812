package deck

import (
	"fmt"

	"github.com/heartmarshall/ankiwiktionary/internal/domain"
)

// FailureMessage is the user-facing text for a word that could not be processed.
func FailureMessage(word string, err error) string {
	switch domain.KindOf(err) {
	case domain.KindNotFound:
		return fmt.Sprintf("Word %q not found", word)
	case domain.KindNetwork:
		return fmt.Sprintf("Word %q was not processed. Network issues - server is not reachable", word)
	case domain.KindParse:
		return fmt.Sprintf("Word %q was not processed. Page could not be parsed", word)
	default:
		return fmt.Sprintf("Word %q was not processed. Unknown error", word)
	}
}
