package cmds

import (
	"fmt"

	"github.com/alexedwards/argon2id"
	"github.com/spf13/cobra"
)

var hashSecret string

// hashCmd produces the argon2id hash that goes in an identity's
// secret_hash config field. The same parameters are used at login, so
// hashes from other tools will still verify but cost differently.
var hashCmd = &cobra.Command{
	Use:   "hash",
	Short: "Hash a login secret for the identity registry",
	RunE: func(_ *cobra.Command, _ []string) error {
		hash, err := argon2id.CreateHash(hashSecret, argon2id.DefaultParams)
		if err != nil {
			return err
		}

		fmt.Println(hash)
		return nil
	},
}

func init() {
	hashCmd.Flags().StringVar(&hashSecret, "secret", "", "Secret to hash")
	err := hashCmd.MarkFlagRequired("secret")
	if err != nil {
		panic("Internal error contact a contributor [secret-flag-required]")
	}

	rootCmd.AddCommand(hashCmd)
}
