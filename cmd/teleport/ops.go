// Copyright (C) 2019-2025, Lux Industries Inc All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/luxfi/teleport/bridge"
	"github.com/luxfi/teleport/payload"
	"github.com/luxfi/teleport/types"
)

// withEnv opens the configured store around run
func withEnv(run func(cmd *cobra.Command, e *env) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) (err error) {
		e, err := openEnv(cmd)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := e.Close(); err == nil {
				err = closeErr
			}
		}()
		return run(cmd, e)
	}
}

var setAllowanceCmd = &cobra.Command{
	Use:   "set-allowance",
	Short: "Open a route between two tokens",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env) error {
		fs := cmd.Flags()
		caller, err := getID(fs, "caller")
		if err != nil {
			return err
		}
		mintToken, err := getAddress(fs, "mint-token")
		if err != nil {
			return err
		}
		burnToken, err := getAddress(fs, "burn-token")
		if err != nil {
			return err
		}
		mintChain, err := getChain(fs, "mint")
		if err != nil {
			return err
		}
		burnChain, err := getChain(fs, "burn")
		if err != nil {
			return err
		}

		err = e.bridge.SetAllowance(cmd.Context(), caller, bridge.SetAllowanceRequest{
			MintToken:     mintToken.Bytes(),
			BurnToken:     burnToken.Bytes(),
			MintChainType: uint8(mintChain.Type),
			MintChainID:   mintChain.ID,
			BurnChainType: uint8(burnChain.Type),
			BurnChainID:   burnChain.ID,
		})
		if err != nil {
			return err
		}
		route := payload.RouteID(
			payload.Side{Chain: mintChain, Token: mintToken},
			payload.Side{Chain: burnChain, Token: burnToken},
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Route %s allowed\n", route)
		return nil
	}),
}

var burnCmd = &cobra.Command{
	Use:   "burn",
	Short: "Burn local tokens and create a proof",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env) error {
		fs := cmd.Flags()
		caller, err := getID(fs, "caller")
		if err != nil {
			return err
		}
		burnToken, err := getID(fs, "burn-token")
		if err != nil {
			return err
		}
		mintToken, err := getAddress(fs, "mint-token")
		if err != nil {
			return err
		}
		mintCaller, err := getAddress(fs, "mint-caller")
		if err != nil {
			return err
		}
		mintChain, err := getChain(fs, "mint")
		if err != nil {
			return err
		}
		amount, err := getUint256(fs, "amount")
		if err != nil {
			return err
		}

		hash, err := e.bridge.BurnAndCreateProof(cmd.Context(), caller, bridge.BurnRequest{
			BurnToken:     burnToken,
			MintToken:     mintToken.Bytes(),
			MintCaller:    mintCaller.Bytes(),
			MintChainType: uint8(mintChain.Type),
			MintChainID:   mintChain.ID,
			Amount:        amount,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Proof hash: %s\n", hash)
		return nil
	}),
}

var approveCmd = &cobra.Command{
	Use:   "approve",
	Short: "Approve a proof created on another chain",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env) error {
		fs := cmd.Flags()
		caller, err := getID(fs, "caller")
		if err != nil {
			return err
		}
		hash, err := getHash(fs, "proof-hash")
		if err != nil {
			return err
		}
		if err := e.bridge.ApproveBurnProof(cmd.Context(), caller, hash.Uint256()); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Proof %s approved\n", hash)
		return nil
	}),
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mint with an approved proof",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env) error {
		fs := cmd.Flags()
		caller, err := getID(fs, "caller")
		if err != nil {
			return err
		}
		mintToken, err := getID(fs, "mint-token")
		if err != nil {
			return err
		}
		burnToken, err := getAddress(fs, "burn-token")
		if err != nil {
			return err
		}
		burnCaller, err := getAddress(fs, "burn-caller")
		if err != nil {
			return err
		}
		burnChain, err := getChain(fs, "burn")
		if err != nil {
			return err
		}
		amount, err := getUint256(fs, "amount")
		if err != nil {
			return err
		}
		nonce, err := getUint256(fs, "nonce")
		if err != nil {
			return err
		}
		hash, err := getHash(fs, "proof-hash")
		if err != nil {
			return err
		}

		err = e.bridge.MintWithBurnProof(cmd.Context(), caller, bridge.MintRequest{
			MintToken:     mintToken,
			BurnToken:     burnToken.Bytes(),
			BurnCaller:    burnCaller.Bytes(),
			BurnChainType: uint8(burnChain.Type),
			BurnChainID:   burnChain.ID,
			Amount:        amount,
			ProofHash:     hash.Uint256(),
			Nonce:         nonce,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Proof %s executed\n", hash)
		return nil
	}),
}

var creditCmd = &cobra.Command{
	Use:   "credit",
	Short: "Credit local token supply to an account",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env) error {
		fs := cmd.Flags()
		caller, err := getID(fs, "caller")
		if err != nil {
			return err
		}
		token, err := getID(fs, "token")
		if err != nil {
			return err
		}
		account, err := getID(fs, "account")
		if err != nil {
			return err
		}
		amount, err := getUint256(fs, "amount")
		if err != nil {
			return err
		}
		if err := e.bridge.Credit(cmd.Context(), caller, token, account, amount); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Credited %s to %s\n", amount.Dec(), account)
		return nil
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show proof, nonce and balance state",
	Args:  cobra.NoArgs,
	RunE: withEnv(func(cmd *cobra.Command, e *env) error {
		fs := cmd.Flags()
		out := cmd.OutOrStdout()

		if fs.Changed("proof-hash") {
			hash, err := getHash(fs, "proof-hash")
			if err != nil {
				return err
			}
			s, err := e.bridge.ProofState(hash)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Proof %s: %s\n", hash, s)
		}
		if fs.Changed("token") {
			tokenID, err := getID(fs, "token")
			if err != nil {
				return err
			}
			token := types.FromNative(tokenID)
			nonce, err := e.bridge.Nonce(token)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Nonce of %s: %s\n", tokenID, nonce.Dec())

			if fs.Changed("account") {
				accountID, err := getID(fs, "account")
				if err != nil {
					return err
				}
				balance, err := e.bridge.Balance(token, types.FromNative(accountID))
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Balance of %s: %s\n", accountID, balance.Dec())
			}
		}
		return nil
	}),
}

func init() {
	for _, cmd := range []*cobra.Command{setAllowanceCmd, burnCmd, approveCmd, mintCmd, creditCmd} {
		cmd.Flags().String("caller", "", "Authenticated caller identity")
	}

	setAllowanceCmd.Flags().String("mint-token", "", "Token on the mint chain (hex)")
	setAllowanceCmd.Flags().String("burn-token", "", "Token on the burn chain (hex)")
	addChainFlags(setAllowanceCmd.Flags(), "mint")
	addChainFlags(setAllowanceCmd.Flags(), "burn")

	burnCmd.Flags().String("burn-token", "", "Local token to burn")
	burnCmd.Flags().String("mint-token", "", "Token on the mint chain (hex)")
	burnCmd.Flags().String("mint-caller", "", "Recipient on the mint chain (hex)")
	addChainFlags(burnCmd.Flags(), "mint")
	burnCmd.Flags().String("amount", "0", "Amount in base units")

	approveCmd.Flags().String("proof-hash", "", "Proof hash (hex)")

	mintCmd.Flags().String("mint-token", "", "Local token to mint")
	mintCmd.Flags().String("burn-token", "", "Token on the burn chain (hex)")
	mintCmd.Flags().String("burn-caller", "", "Holder on the burn chain (hex)")
	addChainFlags(mintCmd.Flags(), "burn")
	mintCmd.Flags().String("amount", "0", "Amount in base units")
	mintCmd.Flags().String("nonce", "0", "Burn nonce")
	mintCmd.Flags().String("proof-hash", "", "Proof hash (hex)")

	creditCmd.Flags().String("token", "", "Local token")
	creditCmd.Flags().String("account", "", "Account to credit")
	creditCmd.Flags().String("amount", "0", "Amount in base units")

	statusCmd.Flags().String("proof-hash", "", "Proof hash (hex)")
	statusCmd.Flags().String("token", "", "Local token")
	statusCmd.Flags().String("account", "", "Account, requires --token")
}
