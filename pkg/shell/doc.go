// Package shell renders the HTML page that hosts the site markup and boots
// the WebAssembly behavior layer.
package shell
