/*
Package launcher runs the image stitcher entry point with the Python
interpreter selected in config.ini.

The project has three main source packages:
`cmd`: Main applications.
`internal`: Private application and library code.
`pkg`: Library code that's ok to use by external applications
*/
package launcher
