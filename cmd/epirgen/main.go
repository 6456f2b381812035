// Command epirgen generates the EC-ElGamal decryption table artifact
// (mG.bin) that PIR clients need to decrypt server replies.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"ellipticpir/client/pkg/ecelgamal"
)

const currentVersion = "1.0.0"

// progressInterval is how many computed points pass between log lines.
const progressInterval = 1 << 20

var quiet bool

var rootCmd = &cobra.Command{
	Use:   "epirgen",
	Short: "Generates the mG decryption table used by PIR clients",
	Long: `epirgen precomputes the sorted table mapping i*G back to i for
i in [0, mmax) and writes it as a fixed-record binary artifact. Clients
and servers must agree on mmax out of band.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if quiet {
			jww.SetStdoutThreshold(jww.LevelError)
		} else {
			jww.SetStdoutThreshold(jww.LevelInfo)
		}

		mmax := viper.GetInt("mmax")
		out := viper.GetString("out")
		if out == "" {
			var err error
			out, err = defaultTablePath()
			if err != nil {
				jww.FATAL.Panicf("Could not resolve the default table path: %+v", err)
			}
		}

		jww.INFO.Printf("Generating decryption table with mmax=%d", mmax)
		start := time.Now()
		table, err := ecelgamal.BuildDecryptionTable(mmax, func(i int) {
			if (i+1)%progressInterval == 0 {
				jww.INFO.Printf("Computed %d/%d points", i+1, mmax)
			}
		})
		if err != nil {
			jww.FATAL.Panicf("Table generation failed: %+v", err)
		}
		jww.INFO.Printf("Generated and sorted %d entries in %s", table.Mmax(), time.Since(start))

		if err := os.MkdirAll(filepath.Dir(out), 0700); err != nil {
			jww.FATAL.Panicf("Could not create %s: %+v", filepath.Dir(out), err)
		}
		if err := os.WriteFile(out, table.Bytes(), 0600); err != nil {
			jww.FATAL.Panicf("Could not write %s: %+v", out, err)
		}
		jww.INFO.Printf("Wrote %s", out)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of epirgen",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("epirgen %s\n", currentVersion)
	},
}

// defaultTablePath resolves $HOME/.EllipticPIR/mG.bin.
func defaultTablePath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".EllipticPIR", "mG.bin"), nil
}

func init() {
	rootCmd.PersistentFlags().Int("mmax", ecelgamal.DefaultMmax,
		"Number of table entries to generate")
	rootCmd.PersistentFlags().String("out", "",
		"Output path (default $HOME/.EllipticPIR/mG.bin)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"Only log errors")
	_ = viper.BindPFlag("mmax", rootCmd.PersistentFlags().Lookup("mmax"))
	_ = viper.BindPFlag("out", rootCmd.PersistentFlags().Lookup("out"))
	viper.SetEnvPrefix("epir")
	viper.AutomaticEnv()
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
