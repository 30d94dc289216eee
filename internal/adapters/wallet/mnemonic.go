package wallet

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/cosmos/go-bip39"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DeriveKey derives the private key at path from a BIP-39 mnemonic (no passphrase).
func DeriveKey(mnemonic string, path string) (*ecdsa.PrivateKey, error) {
	// Normalize whitespace so keys copied across lines still parse
	mnemonic = strings.Join(strings.Fields(mnemonic), " ")
	if mnemonic == "" {
		return nil, fmt.Errorf("mnemonic is empty")
	}

	seed, err := bip39.NewSeedWithErrorChecking(mnemonic, "")
	if err != nil {
		return nil, fmt.Errorf("invalid mnemonic: %w", err)
	}

	derivationPath, err := accounts.ParseDerivationPath(path)
	if err != nil {
		return nil, fmt.Errorf("invalid derivation path %q: %w", path, err)
	}

	key, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return nil, fmt.Errorf("failed to create master key: %w", err)
	}

	for _, index := range derivationPath {
		key, err = key.Derive(index)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s: %w", path, err)
		}
	}

	btcKey, err := key.ECPrivKey()
	if err != nil {
		return nil, fmt.Errorf("failed to extract private key: %w", err)
	}

	return crypto.ToECDSA(btcKey.Serialize())
}

// DeriveAddress returns the address of the key at path.
func DeriveAddress(mnemonic string, path string) (common.Address, error) {
	key, err := DeriveKey(mnemonic, path)
	if err != nil {
		return common.Address{}, err
	}
	return crypto.PubkeyToAddress(key.PublicKey), nil
}
