package config

// builtinChains is the default chain table used when the config file
// does not declare any chains. RPC URLs point at the public endpoints
// and can be overridden per deployment. Chains without a CoinGecko
// platform key have no market data coverage.
func builtinChains() []ChainEntry {
	return []ChainEntry{
		{
			Name:              "Base",
			Slug:              "base",
			ChainID:           8453,
			RPCURL:            "https://mainnet.base.org",
			CoinGeckoPlatform: "base",
		},
		{
			Name:              "Optimism",
			Slug:              "optimism",
			ChainID:           10,
			RPCURL:            "https://mainnet.optimism.io",
			CoinGeckoPlatform: "optimistic-ethereum",
		},
		{
			Name:    "Mode",
			Slug:    "mode",
			ChainID: 34443,
			RPCURL:  "https://mainnet.mode.network",
		},
		{
			Name:    "Zora",
			Slug:    "zora",
			ChainID: 7777777,
			RPCURL:  "https://rpc.zora.energy",
		},
	}
}
