package media

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildKeyUsesDerivedFilename(t *testing.T) {
	saver := &s3Saver{prefix: "generated"}

	// Same source photo, same key: reruns overwrite the previous object.
	assert.Equal(t, "generated/generated_room.png", saver.buildKey("generated_room.png"))
	assert.Equal(t, "generated/generated_room.png", saver.buildKey("generated_room.png"))

	// Path components are stripped from the client-supplied name.
	assert.Equal(t, "generated/generated_room.png", saver.buildKey("../uploads/generated_room.png"))

	noPrefix := &s3Saver{}
	assert.Equal(t, "generated_room.png", noPrefix.buildKey("generated_room.png"))
}

func TestBuildKeyFallsBackToRandomKey(t *testing.T) {
	saver := &s3Saver{prefix: "generated"}

	key := saver.buildKey("")
	assert.True(t, strings.HasPrefix(key, "generated/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.NotEqual(t, key, saver.buildKey(""))
}

func TestObjectURL(t *testing.T) {
	withBase := &s3Saver{baseURL: "https://cdn.example.com/rooms"}
	assert.Equal(t, "https://cdn.example.com/rooms/generated_room.png", withBase.objectURL("generated_room.png"))

	plain := &s3Saver{bucket: "staged-rooms", region: "eu-north-1"}
	assert.Equal(t, "https://staged-rooms.s3.eu-north-1.amazonaws.com/generated_room.png", plain.objectURL("generated_room.png"))
}
