package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bianoble/unity-assets/pkg/unityassets"
)

var (
	initSpec     string
	initForce    bool
	initSettings bool
)

// initTemplate is the default assets.yaml scaffold.
const initTemplate = `# unity-assets spec
project: MyGame
outputDir: Assets/Generated
# unityProject: .            # detected from outputDir when omitted
# unityVersion: ">=2022.3"   # skip the editor run on other versions
# defaultNamespace: MyGame
# folders:
#   material: Art/Materials

assets:
  - type: script
    name: PlayerController
    fields:
      - name: speed
        type: float
        default: 5
        range: [0, 20]
      - name: jumpHeight
        type: float
        default: 2

  - type: scriptable-object
    name: WeaponData
    menuPath: MyGame/Weapon
    fields:
      - name: damage
        type: int
        default: 10
      - name: element
        values: [None, Fire, Ice]

  - type: scriptable-instance
    name: Sword
    scriptableType: WeaponData
    values:
      damage: 25
      element: 1

  - type: material
    name: PlayerSkin
    shader: Standard
    properties:
      _Color: [0.2, 0.4, 1, 1]
      _Glossiness: 0.5

  - type: prefab
    name: Player
    tag: Player
    components:
      - type: Rigidbody
        properties:
          m_Mass: 1
      - type: CapsuleCollider
    children:
      - name: Model
        components:
          - type: MeshRenderer

  # - type: shader
  #   name: Outline
  #   pipeline: urp
  #   properties:
  #     - name: _OutlineColor
  #       type: color

  # - type: animation
  #   name: Bob
  #   length: 1
  #   loop: true
  #   curves:
  #     - path: ""
  #       property: localPosition.y
  #       component: Transform
  #       keys:
  #         - {time: 0, value: 0}
  #         - {time: 1, value: 0.25}
`

// settingsTemplate is the default unity-assets.yaml scaffold.
const settingsTemplate = `# unity-assets settings
version: 1

# unity_path: /Applications/Unity/Hub/Editor/2022.3.10f1/Unity.app/Contents/MacOS/Unity
# timeout: 5m
# parallelism: 4
# skip_batch: false
# no_history: false
# debounce: 300ms
# folders:
#   prefab: Prefabs
`

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter assets.yaml spec",
	Long: `Creates an assets.yaml file in the current directory with one example of
each common asset type. With --settings, also creates a unity-assets.yaml
settings file next to it.

Use --force to overwrite existing files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		files := []struct {
			path, content string
		}{{initSpec, initTemplate}}
		if initSettings {
			files = append(files, struct{ path, content string }{configPath, settingsTemplate})
		}

		for _, f := range files {
			outPath, err := filepath.Abs(f.path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			if !initForce {
				if _, err := os.Stat(outPath); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
				}
			}
			if err := os.WriteFile(outPath, []byte(f.content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			info("Created %s", outPath)
		}

		info("")
		info("Next steps:")
		info("  1. Edit the spec to declare your assets")
		info("  2. Run 'unity-assets generate --dry-run' to preview")
		info("  3. Run 'unity-assets generate' to write files and import them")
		return nil
	},
}

func init() {
	initCmd.Flags().StringVar(&initSpec, "spec", unityassets.DefaultSpecPath, "path of the spec to create")
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite existing files")
	initCmd.Flags().BoolVar(&initSettings, "settings", false, "also create a settings file")
	rootCmd.AddCommand(initCmd)
}
