package generator

import (
	"strconv"
	"strings"

	"github.com/bianoble/unity-assets/internal/guid"
)

// Main object file IDs of single-object native assets.
const (
	MaterialFileID      int64 = 2100000
	AnimationClipFileID int64 = 7400000
	MonoBehaviourFileID int64 = 11400000
	MonoScriptFileID    int64 = 11500000
)

// MetaGUID is the GUID written to the .meta file of an asset file name.
func MetaGUID(name, ext string) string {
	return guid.Derive(name + ext)
}

func metaFile(guid, importer string, body ...string) string {
	var b strings.Builder
	b.WriteString("fileFormatVersion: 2\n")
	b.WriteString("guid: " + guid + "\n")
	b.WriteString(importer + ":\n")
	b.WriteString("  externalObjects: {}\n")
	for _, l := range body {
		b.WriteString(l + "\n")
	}
	b.WriteString("  userData: \n")
	b.WriteString("  assetBundleName: \n")
	b.WriteString("  assetBundleVariant: \n")
	return b.String()
}

// PrefabMeta renders the .meta of a prefab.
func PrefabMeta(name string) string {
	return metaFile(MetaGUID(name, ".prefab"), "PrefabImporter")
}

// MaterialMeta renders the .meta of a material.
func MaterialMeta(name string) string {
	return nativeFormatMeta(MetaGUID(name, ".mat"), MaterialFileID)
}

// AnimationMeta renders the .meta of an animation clip.
func AnimationMeta(name string) string {
	return nativeFormatMeta(MetaGUID(name, ".anim"), AnimationClipFileID)
}

// ShaderMeta renders the .meta of a shader.
func ShaderMeta(name string) string {
	return metaFile(MetaGUID(name, ".shader"), "ShaderImporter",
		"  defaultTextures: []",
		"  nonModifiableTextures: []",
	)
}

// ScriptMeta renders a MonoImporter .meta for a C# file with the given GUID.
func ScriptMeta(guid string) string {
	return metaFile(guid, "MonoImporter",
		"  serializedVersion: 2",
		"  defaultReferences: []",
		"  executionOrder: 0",
		"  icon: {instanceID: 0}",
	)
}

func nativeFormatMeta(guid string, mainObjectFileID int64) string {
	return metaFile(guid, "NativeFormatImporter",
		"  mainObjectFileID: "+strconv.FormatInt(mainObjectFileID, 10),
	)
}
