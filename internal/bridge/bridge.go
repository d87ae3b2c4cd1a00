// Package bridge installs the editor script that post-processes a
// generated manifest when Unity runs in batch mode.
package bridge

import (
	"bytes"
	"path"
	"text/template"

	"go.uber.org/zap"

	"github.com/bianoble/unity-assets/internal/errors"
	"github.com/bianoble/unity-assets/internal/generator"
	"github.com/bianoble/unity-assets/internal/guid"
	"github.com/bianoble/unity-assets/internal/logger"
	"github.com/bianoble/unity-assets/internal/sandbox"
	"github.com/bianoble/unity-assets/internal/spec"
)

const (
	// ClassName is the static editor class the bridge defines.
	ClassName = "AssetManifestBridge"
	// ExecuteMethod is passed to -executeMethod.
	ExecuteMethod = ClassName + ".ProcessManifest"
	// ManifestArg names the command-line argument carrying the manifest path.
	ManifestArg = "manifest"
	// Dir is where the script lives, relative to the Unity project root.
	Dir = "Assets/Editor"
)

// ScriptPath is the bridge script path relative to the project root.
var ScriptPath = path.Join(Dir, ClassName+".cs")

// Data parameterizes the bridge source.
type Data struct {
	ClassName   string
	MenuItem    string
	ManifestArg string
	// ImportKinds are the asset kinds the bridge force-imports.
	ImportKinds []spec.Kind
}

// DefaultData returns the data used by Install.
func DefaultData() Data {
	var kinds []spec.Kind
	for _, k := range spec.Kinds {
		if k.NeedsPostProcessing() {
			kinds = append(kinds, k)
		}
	}
	return Data{
		ClassName:   ClassName,
		MenuItem:    "Tools/Unity Assets/Process Asset Manifest",
		ManifestArg: "-" + ManifestArg,
		ImportKinds: kinds,
	}
}

var scriptTemplate = template.Must(template.New("bridge").Option("missingkey=error").Parse(scriptSource))

// Render produces the bridge C# source.
func Render(data Data) ([]byte, error) {
	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "rendering bridge script")
	}
	return buf.Bytes(), nil
}

// ScriptGUID is the stable GUID of the bridge script's meta file.
func ScriptGUID() string {
	return guid.Derive(ClassName + ".cs")
}

// Installation reports where the bridge was written.
type Installation struct {
	Path     string
	MetaPath string
	// Written is false when both files were already up to date.
	Written bool
}

// Install writes the bridge script and its meta file into projectPath.
// Files whose content is already current are left untouched.
func Install(projectPath string, l *zap.SugaredLogger) (*Installation, error) {
	log := logger.OrComponent(l, "bridge")

	source, err := Render(DefaultData())
	if err != nil {
		return nil, err
	}
	meta := []byte(generator.ScriptMeta(ScriptGUID()))

	wroteScript, err := sandbox.WriteIfChanged(projectPath, ScriptPath, source, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "installing %s", ScriptPath)
	}
	metaPath := ScriptPath + ".meta"
	wroteMeta, err := sandbox.WriteIfChanged(projectPath, metaPath, meta, 0o644)
	if err != nil {
		return nil, errors.Wrapf(err, "installing %s", metaPath)
	}

	inst := &Installation{Path: ScriptPath, MetaPath: metaPath, Written: wroteScript || wroteMeta}
	if inst.Written {
		log.Infow("Installed editor bridge", logger.FieldProject, projectPath, logger.FieldPath, ScriptPath)
	} else {
		log.Debugw("Editor bridge up to date", logger.FieldProject, projectPath)
	}
	return inst, nil
}

// Installed reports whether the bridge script exists under projectPath with
// current content.
func Installed(projectPath string) (bool, error) {
	source, err := Render(DefaultData())
	if err != nil {
		return false, err
	}
	return sandbox.Unchanged(projectPath, ScriptPath, source)
}

const scriptSource = `using System;
using System.IO;
using UnityEditor;
using UnityEngine;

/// <summary>
/// Imports assets listed in a generated manifest. Run with
/// -executeMethod {{.ClassName}}.ProcessManifest {{.ManifestArg}} <path>
/// </summary>
public static class {{.ClassName}}
{
    [MenuItem("{{.MenuItem}}")]
    public static void ProcessManifest()
    {
        string manifestPath = GetCommandLineArg("{{.ManifestArg}}");
        if (string.IsNullOrEmpty(manifestPath))
        {
            Debug.LogError("[{{.ClassName}}] No manifest path provided. Use {{.ManifestArg}} <path>");
            return;
        }

        if (!File.Exists(manifestPath))
        {
            Debug.LogError($"[{{.ClassName}}] Manifest not found: {manifestPath}");
            return;
        }

        Debug.Log($"[{{.ClassName}}] Processing manifest: {manifestPath}");

        var manifest = JsonUtility.FromJson<AssetManifest>(File.ReadAllText(manifestPath));
        if (manifest == null || manifest.assets == null)
        {
            Debug.LogError("[{{.ClassName}}] Failed to parse manifest");
            return;
        }

        int processed = 0;
        foreach (var asset in manifest.assets)
        {
            try
            {
                ProcessAsset(manifest, asset);
                processed++;
            }
            catch (Exception ex)
            {
                Debug.LogError($"[{{.ClassName}}] Error processing {asset.name}: {ex.Message}");
            }
        }

        AssetDatabase.Refresh();
        Debug.Log($"[{{.ClassName}}] Processed {processed}/{manifest.assets.Length} assets");
    }

    static void ProcessAsset(AssetManifest manifest, ManifestAsset asset)
    {
        Debug.Log($"[{{.ClassName}}] Processing: {asset.type} - {asset.name}");

        switch (asset.type)
        {
{{- range .ImportKinds}}
            case "{{.}}":
{{- end}}
                AssetDatabase.ImportAsset(AssetPath(manifest, asset.path), ImportAssetOptions.ForceUpdate);
                break;
            default:
                break;
        }
    }

    static string AssetPath(AssetManifest manifest, string path)
    {
        if (string.IsNullOrEmpty(manifest.assetRoot))
            return path;
        return manifest.assetRoot.TrimEnd('/') + "/" + path;
    }

    static string GetCommandLineArg(string name)
    {
        string[] args = Environment.GetCommandLineArgs();
        for (int i = 0; i < args.Length - 1; i++)
        {
            if (args[i] == name)
                return args[i + 1];
        }
        return null;
    }

    [Serializable]
    class AssetManifest
    {
        public string project;
        public string generatedAt;
        public string assetRoot;
        public bool requiresBatchMode;
        public ManifestAsset[] assets;
    }

    [Serializable]
    class ManifestAsset
    {
        public string name;
        public string type;
        public string path;
        public string metaPath;
    }
}
`
