package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyResponseSuccessEnvelope(t *testing.T) {
	classified := ClassifyResponse(RawResponse(`{"statusCode":200,"value":[{"conversion_id":"c1"}]}`))

	assert.Equal(t, ResponseSuccess, classified.Kind)
	assert.Len(t, classified.Items, 1)
	assert.Empty(t, classified.PartialFailures)
}

func TestClassifyResponseSuccessWithPartialFailures(t *testing.T) {
	classified := ClassifyResponse(RawResponse(`{"statusCode":200,"value":[],"partialFailureErrors":[{"reason":"timeout"}]}`))

	assert.Equal(t, ResponseSuccess, classified.Kind)
	assert.Len(t, classified.PartialFailures, 1)
}

func TestClassifyResponseMissingValue(t *testing.T) {
	classified := ClassifyResponse(RawResponse(`{"statusCode":200,"message":"ok"}`))

	assert.Equal(t, ResponseMissingValue, classified.Kind)
}

func TestClassifyResponseSuccessEnvelopeWinsOverLegacy(t *testing.T) {
	classified := ClassifyResponse(RawResponse(`{"statusCode":200,"value":[{"a":1}],"data":[{"b":2}]}`))

	assert.Equal(t, ResponseSuccess, classified.Kind)
	assert.Len(t, classified.Items, 1)
}

func TestClassifyResponseLegacyShapes(t *testing.T) {
	data := ClassifyResponse(RawResponse(`{"data":[{"a":1},{"b":2}]}`))
	assert.Equal(t, ResponseLegacy, data.Kind)
	assert.Len(t, data.Items, 2)

	results := ClassifyResponse(RawResponse(`{"results":[{"a":1}]}`))
	assert.Equal(t, ResponseLegacy, results.Kind)
	assert.Len(t, results.Items, 1)
}

func TestClassifyResponseErrorEnvelope(t *testing.T) {
	classified := ClassifyResponse(RawResponse(`{"error":"quota exceeded","error_code":"rate_limited"}`))

	assert.Equal(t, ResponseError, classified.Kind)
	assert.Equal(t, "rate_limited", classified.ErrorCode)
	assert.Equal(t, "quota exceeded", classified.ErrorMessage)
}

func TestClassifyResponseErrorWithoutCode(t *testing.T) {
	classified := ClassifyResponse(RawResponse(`{"error":"boom"}`))

	assert.Equal(t, ResponseError, classified.Kind)
	assert.Equal(t, "unknown_error", classified.ErrorCode)
}

func TestClassifyResponseFlatList(t *testing.T) {
	classified := ClassifyResponse(RawResponse(`[{"conversion_id":"c1"},{"conversion_id":"c2"}]`))

	assert.Equal(t, ResponseFlatList, classified.Kind)
	assert.Len(t, classified.Items, 2)
}

func TestClassifyResponseUnrecognized(t *testing.T) {
	// A non-200 statusCode object falls through every recognized shape.
	assert.Equal(t, ResponseInvalidStructure, ClassifyResponse(RawResponse(`{"statusCode":500}`)).Kind)
	assert.Equal(t, ResponseInvalidStructure, ClassifyResponse(RawResponse(`{"foo":"bar"}`)).Kind)
	assert.Equal(t, ResponseInvalidType, ClassifyResponse(RawResponse(`"a string"`)).Kind)
	assert.Equal(t, ResponseInvalidType, ClassifyResponse(RawResponse(`42`)).Kind)
	assert.Equal(t, ResponseInvalidType, ClassifyResponse(RawResponse(`{not json`)).Kind)
}
