package model

import (
	"encoding/json"
)

// AttributionRecord Model attribution_customer_journey table. Unique on
// (conv_id, session_id) with replace-on-conflict, so re-running a load
// converges to the latest submission's value. A record with IHC 0 is
// structurally valid but does not count as a valid attribution.
type AttributionRecord struct {
	ConvID    string  `gorm:"column:conv_id;primary_key:true" json:"conv_id"`
	SessionID string  `gorm:"column:session_id;primary_key:true" json:"session_id"`
	IHC       float64 `gorm:"column:ihc" json:"ihc"`
}

func (AttributionRecord) TableName() string {
	return "attribution_customer_journey"
}

// RawResponse is the opaque body returned for one batch submission.
type RawResponse = json.RawMessage

// ResponseKind tags the recognized shapes of an API response payload. The API
// has shipped several response contracts over time and the classification
// order below is load-bearing: a success envelope is probed before the legacy
// shapes, and an error object only after those.
type ResponseKind int

const (
	// ResponseSuccess is {"statusCode":200,"value":[...]} with optional
	// partialFailureErrors.
	ResponseSuccess ResponseKind = iota
	// ResponseMissingValue is statusCode 200 without a usable value array.
	ResponseMissingValue
	// ResponseLegacy is an object carrying a "data" or "results" array.
	ResponseLegacy
	// ResponseError is an object carrying an "error" field.
	ResponseError
	// ResponseFlatList is a bare array of attribution entries.
	ResponseFlatList
	// ResponseInvalidStructure is an object matching none of the above.
	ResponseInvalidStructure
	// ResponseInvalidType is anything that is neither object nor array.
	ResponseInvalidType
)

// ClassifiedResponse is the tagged-variant view of one raw response payload.
type ClassifiedResponse struct {
	Kind            ResponseKind
	Items           []interface{}
	PartialFailures []interface{}
	ErrorCode       string
	ErrorMessage    string
	Raw             interface{}
}

// ClassifyResponse decides which response contract a payload follows. It is a
// pure function over the decoded payload; nothing here validates individual
// attribution entries.
func ClassifyResponse(raw RawResponse) ClassifiedResponse {
	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ClassifiedResponse{Kind: ResponseInvalidType, Raw: string(raw)}
	}

	switch body := payload.(type) {
	case map[string]interface{}:
		if statusCode, ok := body["statusCode"]; ok && isStatusOK(statusCode) {
			value, ok := body["value"].([]interface{})
			if !ok {
				return ClassifiedResponse{Kind: ResponseMissingValue, Raw: body}
			}
			classified := ClassifiedResponse{Kind: ResponseSuccess, Items: value, Raw: body}
			if failures, ok := body["partialFailureErrors"].([]interface{}); ok {
				classified.PartialFailures = failures
			}
			return classified
		}
		if data, ok := body["data"].([]interface{}); ok {
			return ClassifiedResponse{Kind: ResponseLegacy, Items: data, Raw: body}
		}
		if results, ok := body["results"].([]interface{}); ok {
			return ClassifiedResponse{Kind: ResponseLegacy, Items: results, Raw: body}
		}
		if errValue, ok := body["error"]; ok {
			classified := ClassifiedResponse{Kind: ResponseError, Raw: body}
			classified.ErrorCode = "unknown_error"
			if code, ok := body["error_code"].(string); ok && code != "" {
				classified.ErrorCode = code
			}
			if message, ok := errValue.(string); ok {
				classified.ErrorMessage = message
			}
			return classified
		}
		return ClassifiedResponse{Kind: ResponseInvalidStructure, Raw: body}
	case []interface{}:
		return ClassifiedResponse{Kind: ResponseFlatList, Items: body, Raw: body}
	default:
		return ClassifiedResponse{Kind: ResponseInvalidType, Raw: body}
	}
}

func isStatusOK(statusCode interface{}) bool {
	code, ok := statusCode.(float64)
	return ok && code == 200
}
