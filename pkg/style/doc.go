// Package style holds the terminal styling for the dircolors CLI chrome:
// error banners, help headings and the decision whether to emit colors at
// all. File names themselves are colored by the classifier package.
package style
