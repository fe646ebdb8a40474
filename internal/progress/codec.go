package progress

import (
	"encoding/json"
	"fmt"
)

// ledgerDoc is the persisted shape: a topics map wrapped in an object
// so future top-level fields stay backward compatible.
type ledgerDoc struct {
	Topics map[string]json.RawMessage `json:"topics"`
}

// legacyTopic is the flat per-topic shape written by early releases,
// before counters were split into overall and current-set.
type legacyTopic struct {
	Attempted     *int `json:"attempted"`
	Correct       int  `json:"correct"`
	CompletedSets int  `json:"completedSets"`
}

// decodeLedger parses a stored ledger, upgrading legacy records on the
// way in. Legacy records keep their lifetime counters and completed-set
// count; the current set starts fresh.
func decodeLedger(data []byte) (map[string]TopicProgress, error) {
	var doc ledgerDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}

	topics := make(map[string]TopicProgress, len(doc.Topics))
	for id, raw := range doc.Topics {
		var legacy legacyTopic
		if err := json.Unmarshal(raw, &legacy); err == nil && legacy.Attempted != nil {
			topics[id] = TopicProgress{
				Overall:       Overall{Attempted: *legacy.Attempted, Correct: legacy.Correct},
				CompletedSets: legacy.CompletedSets,
			}
			continue
		}

		var rec TopicProgress
		if err := json.Unmarshal(raw, &rec); err != nil {
			return nil, fmt.Errorf("parse progress for topic %q: %w", id, err)
		}
		topics[id] = rec
	}
	return topics, nil
}

// encodeLedger serializes the ledger in the current shape.
func encodeLedger(topics map[string]TopicProgress) ([]byte, error) {
	doc := struct {
		Topics map[string]TopicProgress `json:"topics"`
	}{Topics: topics}
	return json.Marshal(doc)
}
