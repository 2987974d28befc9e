package filehandler

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RandomFilename generates an anonymized replacement filename carrying only
// the original extension.
func RandomFilename(extension string) string {
	random := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("cleaned_%s.%s", random, strings.TrimPrefix(extension, "."))
}

// RandomizeTimestamp sets the file's access and modification times to a
// uniformly random instant within a year of now, in either direction.
func RandomizeTimestamp(filePath string) error {
	days := rand.Intn(731) - 365 // [-365, 365]
	seconds := rand.Intn(86401)  // [0, 86400]

	newTime := time.Now().
		AddDate(0, 0, days).
		Add(time.Duration(seconds) * time.Second)

	if err := os.Chtimes(filePath, newTime, newTime); err != nil {
		return fmt.Errorf("failed to set file times: %w", err)
	}
	return nil
}
