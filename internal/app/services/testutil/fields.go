package testutil

import "go.mongodb.org/mongo-driver/bson"

// applyFields mimics a $set of top-level bson fields on an in-memory document.
func applyFields(document interface{}, fields map[string]interface{}) error {
	raw, err := bson.Marshal(document)
	if err != nil {
		return err
	}
	var current bson.M
	if err := bson.Unmarshal(raw, &current); err != nil {
		return err
	}
	for key, value := range fields {
		current[key] = value
	}
	raw, err = bson.Marshal(current)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, document)
}
