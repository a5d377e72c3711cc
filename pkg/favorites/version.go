// Package favorites holds build metadata for the favorites application.
package favorites

// Version is the application version reported by the version command.
const Version = "0.1.0"

// AppID is the Fyne application identifier; it namespaces stored preferences.
const AppID = "com.mesh-intelligence.favorites"
