package assistant

import (
	"strings"

	"github.com/cloudwego/eino/schema"
)

// Chunks splits a reply into line-sized assistant messages for incremental delivery.
// Concatenating the chunk contents yields the original text.
func Chunks(content string) *schema.StreamReader[*schema.Message] {
	lines := strings.SplitAfter(content, "\n")

	chunks := make([]*schema.Message, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}
		chunks = append(chunks, schema.AssistantMessage(line, nil))
	}
	return schema.StreamReaderFromArray(chunks)
}
