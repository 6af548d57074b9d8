// Package printing implements the document delivery pipeline: the escalating
// sequence of channels that takes a rendered document to paper.
//
// Three channels are attempted in order of decreasing friction:
//
//   - silent: the rendered text goes straight to the host print spooler
//   - visible: the document is laid out in a browser page, printed to PDF
//     over the DevTools protocol and spooled
//   - embedded: an in-process ESC/POS writer targets the device directly
//
// Each attempt runs under its own timeout. The pipeline never drops a
// document silently: the caller always receives a result naming the channel
// that served it or the reasons every channel failed.
package printing
