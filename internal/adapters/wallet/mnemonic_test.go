package wallet

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Well-known development mnemonic used by anvil and hardhat
const testMnemonic = "test test test test test test test test test test test junk"

func TestDeriveKey(t *testing.T) {
	t.Run("default path matches the first dev account", func(t *testing.T) {
		key, err := DeriveKey(testMnemonic, "m/44'/60'/0'/0/0")
		require.NoError(t, err)

		assert.Equal(t,
			common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"),
			crypto.PubkeyToAddress(key.PublicKey),
		)
	})

	t.Run("second index derives the second dev account", func(t *testing.T) {
		addr, err := DeriveAddress(testMnemonic, "m/44'/60'/0'/0/1")
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8"), addr)
	})

	t.Run("extra whitespace is ignored", func(t *testing.T) {
		addr, err := DeriveAddress("  test test test test test test\n test test test test test junk ", "m/44'/60'/0'/0/0")
		require.NoError(t, err)
		assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), addr)
	})

	t.Run("bad checksum is rejected", func(t *testing.T) {
		_, err := DeriveKey("abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon", "m/44'/60'/0'/0/0")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid mnemonic")
	})

	t.Run("empty mnemonic is rejected", func(t *testing.T) {
		_, err := DeriveKey("   ", "m/44'/60'/0'/0/0")
		require.Error(t, err)
	})

	t.Run("bad derivation path is rejected", func(t *testing.T) {
		_, err := DeriveKey(testMnemonic, "not/a/path")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid derivation path")
	})
}
