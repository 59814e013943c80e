package config

// Base application details
const AppName = "templit"
const ConfigDirName = "templit"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "templit.log"

// Conversion behavior
const DefaultMaxPasses = 10

// These could be moved to NewDefaultConfig(), keeping here for now
const DefaultVerifySyntax = true
const SystemClipboard = true
