//go:build npp && cgo

package gonpp

// #include "gonpp_npp.h"
import "C"

func (nppLibrary) copy(f Format, src, dst plane, roi Size,
	sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiCopy_8u_C1R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format8uC3:
		return status(C.nppiCopy_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format8uC4:
		return status(C.nppiCopy_8u_C4R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format16uC1:
		return status(C.nppiCopy_16u_C1R_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16uC3:
		return status(C.nppiCopy_16u_C3R_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16uC4:
		return status(C.nppiCopy_16u_C4R_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16sC1:
		return status(C.nppiCopy_16s_C1R_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format16sC3:
		return status(C.nppiCopy_16s_C3R_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format16sC4:
		return status(C.nppiCopy_16s_C4R_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format32sC1:
		return status(C.nppiCopy_32s_C1R_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32sC3:
		return status(C.nppiCopy_32s_C3R_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32sC4:
		return status(C.nppiCopy_32s_C4R_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32fC1:
		return status(C.nppiCopy_32f_C1R_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	case Format32fC3:
		return status(C.nppiCopy_32f_C3R_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	case Format32fC4:
		return status(C.nppiCopy_32f_C4R_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	}
	return noVariant
}

func (nppLibrary) copyChannel(f Format, src, dst plane, roi Size,
	sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	switch f {
	case Format8uC3:
		return status(C.nppiCopy_8u_C3CR_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format8uC4:
		return status(C.nppiCopy_8u_C4CR_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format16uC3:
		return status(C.nppiCopy_16u_C3CR_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16uC4:
		return status(C.nppiCopy_16u_C4CR_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16sC3:
		return status(C.nppiCopy_16s_C3CR_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format16sC4:
		return status(C.nppiCopy_16s_C4CR_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format32sC3:
		return status(C.nppiCopy_32s_C3CR_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32sC4:
		return status(C.nppiCopy_32s_C4CR_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32fC3:
		return status(C.nppiCopy_32f_C3CR_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	case Format32fC4:
		return status(C.nppiCopy_32f_C4CR_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	}
	return noVariant
}

// extractChannel is keyed by the multi-channel source format.
func (nppLibrary) extractChannel(f Format, src, dst plane, roi Size,
	sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	switch f {
	case Format8uC3:
		return status(C.nppiCopy_8u_C3C1R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format8uC4:
		return status(C.nppiCopy_8u_C4C1R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format16uC3:
		return status(C.nppiCopy_16u_C3C1R_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16uC4:
		return status(C.nppiCopy_16u_C4C1R_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16sC3:
		return status(C.nppiCopy_16s_C3C1R_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format16sC4:
		return status(C.nppiCopy_16s_C4C1R_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format32sC3:
		return status(C.nppiCopy_32s_C3C1R_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32sC4:
		return status(C.nppiCopy_32s_C4C1R_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32fC3:
		return status(C.nppiCopy_32f_C3C1R_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	case Format32fC4:
		return status(C.nppiCopy_32f_C4C1R_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	}
	return noVariant
}

// insertChannel is keyed by the multi-channel destination format.
func (nppLibrary) insertChannel(f Format, src, dst plane, roi Size,
	sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	switch f {
	case Format8uC3:
		return status(C.nppiCopy_8u_C1C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format8uC4:
		return status(C.nppiCopy_8u_C1C4R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case Format16uC3:
		return status(C.nppiCopy_16u_C1C3R_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16uC4:
		return status(C.nppiCopy_16u_C1C4R_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
	case Format16sC3:
		return status(C.nppiCopy_16s_C1C3R_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format16sC4:
		return status(C.nppiCopy_16s_C1C4R_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
	case Format32sC3:
		return status(C.nppiCopy_32s_C1C3R_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32sC4:
		return status(C.nppiCopy_32s_C1C4R_Ctx(s32(src), step(src), s32(dst), step(dst), r, c))
	case Format32fC3:
		return status(C.nppiCopy_32f_C1C3R_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	case Format32fC4:
		return status(C.nppiCopy_32f_C1C4R_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
	}
	return noVariant
}

func (nppLibrary) set(f Format, value [4]float64, dst plane, roi Size,
	sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	var a8 [4]C.Npp8u
	var a16u [4]C.Npp16u
	var a16s [4]C.Npp16s
	var a32s [4]C.Npp32s
	var a32f [4]C.Npp32f
	for i, v := range value {
		a8[i], a16u[i], a16s[i] = C.Npp8u(v), C.Npp16u(v), C.Npp16s(v)
		a32s[i], a32f[i] = C.Npp32s(v), C.Npp32f(v)
	}
	switch f {
	case Format8uC1:
		return status(C.nppiSet_8u_C1R_Ctx(a8[0], u8(dst), step(dst), r, c))
	case Format8uC3:
		return status(C.nppiSet_8u_C3R_Ctx(&a8[0], u8(dst), step(dst), r, c))
	case Format8uC4:
		return status(C.nppiSet_8u_C4R_Ctx(&a8[0], u8(dst), step(dst), r, c))
	case Format16uC1:
		return status(C.nppiSet_16u_C1R_Ctx(a16u[0], u16(dst), step(dst), r, c))
	case Format16uC3:
		return status(C.nppiSet_16u_C3R_Ctx(&a16u[0], u16(dst), step(dst), r, c))
	case Format16uC4:
		return status(C.nppiSet_16u_C4R_Ctx(&a16u[0], u16(dst), step(dst), r, c))
	case Format16sC1:
		return status(C.nppiSet_16s_C1R_Ctx(a16s[0], s16(dst), step(dst), r, c))
	case Format16sC3:
		return status(C.nppiSet_16s_C3R_Ctx(&a16s[0], s16(dst), step(dst), r, c))
	case Format16sC4:
		return status(C.nppiSet_16s_C4R_Ctx(&a16s[0], s16(dst), step(dst), r, c))
	case Format32sC1:
		return status(C.nppiSet_32s_C1R_Ctx(a32s[0], s32(dst), step(dst), r, c))
	case Format32sC3:
		return status(C.nppiSet_32s_C3R_Ctx(&a32s[0], s32(dst), step(dst), r, c))
	case Format32sC4:
		return status(C.nppiSet_32s_C4R_Ctx(&a32s[0], s32(dst), step(dst), r, c))
	case Format32fC1:
		return status(C.nppiSet_32f_C1R_Ctx(a32f[0], f32(dst), step(dst), r, c))
	case Format32fC3:
		return status(C.nppiSet_32f_C3R_Ctx(&a32f[0], f32(dst), step(dst), r, c))
	case Format32fC4:
		return status(C.nppiSet_32f_C4R_Ctx(&a32f[0], f32(dst), step(dst), r, c))
	}
	return noVariant
}

func (nppLibrary) convert(from, to Format, src, dst plane, roi Size,
	mode RoundMode, sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	m := C.NppRoundMode(mode)
	switch [2]Format{from, to} {
	case [2]Format{Format8uC1, Format16uC1}:
		return status(C.nppiConvert_8u16u_C1R_Ctx(u8(src), step(src), u16(dst), step(dst), r, c))
	case [2]Format{Format8uC3, Format16uC3}:
		return status(C.nppiConvert_8u16u_C3R_Ctx(u8(src), step(src), u16(dst), step(dst), r, c))
	case [2]Format{Format8uC4, Format16uC4}:
		return status(C.nppiConvert_8u16u_C4R_Ctx(u8(src), step(src), u16(dst), step(dst), r, c))
	case [2]Format{Format8uC1, Format32fC1}:
		return status(C.nppiConvert_8u32f_C1R_Ctx(u8(src), step(src), f32(dst), step(dst), r, c))
	case [2]Format{Format8uC3, Format32fC3}:
		return status(C.nppiConvert_8u32f_C3R_Ctx(u8(src), step(src), f32(dst), step(dst), r, c))
	case [2]Format{Format8uC4, Format32fC4}:
		return status(C.nppiConvert_8u32f_C4R_Ctx(u8(src), step(src), f32(dst), step(dst), r, c))
	case [2]Format{Format16uC1, Format32fC1}:
		return status(C.nppiConvert_16u32f_C1R_Ctx(u16(src), step(src), f32(dst), step(dst), r, c))
	case [2]Format{Format16uC3, Format32fC3}:
		return status(C.nppiConvert_16u32f_C3R_Ctx(u16(src), step(src), f32(dst), step(dst), r, c))
	case [2]Format{Format16uC4, Format32fC4}:
		return status(C.nppiConvert_16u32f_C4R_Ctx(u16(src), step(src), f32(dst), step(dst), r, c))
	case [2]Format{Format16uC1, Format8uC1}:
		return status(C.nppiConvert_16u8u_C1R_Ctx(u16(src), step(src), u8(dst), step(dst), r, c))
	case [2]Format{Format16uC3, Format8uC3}:
		return status(C.nppiConvert_16u8u_C3R_Ctx(u16(src), step(src), u8(dst), step(dst), r, c))
	case [2]Format{Format16uC4, Format8uC4}:
		return status(C.nppiConvert_16u8u_C4R_Ctx(u16(src), step(src), u8(dst), step(dst), r, c))
	case [2]Format{Format32fC1, Format8uC1}:
		return status(C.nppiConvert_32f8u_C1RSfs_Ctx(f32(src), step(src), u8(dst), step(dst), r, m, 0, c))
	case [2]Format{Format32fC3, Format8uC3}:
		return status(C.nppiConvert_32f8u_C3RSfs_Ctx(f32(src), step(src), u8(dst), step(dst), r, m, 0, c))
	case [2]Format{Format32fC4, Format8uC4}:
		return status(C.nppiConvert_32f8u_C4RSfs_Ctx(f32(src), step(src), u8(dst), step(dst), r, m, 0, c))
	}
	return noVariant
}

func (nppLibrary) swapChannels(f Format, src, dst plane, roi Size,
	order [4]int, sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	var o [4]C.int
	for i, v := range order {
		o[i] = C.int(v)
	}
	switch f {
	case Format8uC3:
		return status(C.nppiSwapChannels_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, &o[0], c))
	case Format8uC4:
		return status(C.nppiSwapChannels_8u_C4R_Ctx(u8(src), step(src), u8(dst), step(dst), r, &o[0], c))
	case Format16uC3:
		return status(C.nppiSwapChannels_16u_C3R_Ctx(u16(src), step(src), u16(dst), step(dst), r, &o[0], c))
	case Format16uC4:
		return status(C.nppiSwapChannels_16u_C4R_Ctx(u16(src), step(src), u16(dst), step(dst), r, &o[0], c))
	case Format16sC3:
		return status(C.nppiSwapChannels_16s_C3R_Ctx(s16(src), step(src), s16(dst), step(dst), r, &o[0], c))
	case Format16sC4:
		return status(C.nppiSwapChannels_16s_C4R_Ctx(s16(src), step(src), s16(dst), step(dst), r, &o[0], c))
	case Format32sC3:
		return status(C.nppiSwapChannels_32s_C3R_Ctx(s32(src), step(src), s32(dst), step(dst), r, &o[0], c))
	case Format32sC4:
		return status(C.nppiSwapChannels_32s_C4R_Ctx(s32(src), step(src), s32(dst), step(dst), r, &o[0], c))
	case Format32fC3:
		return status(C.nppiSwapChannels_32f_C3R_Ctx(f32(src), step(src), f32(dst), step(dst), r, &o[0], c))
	case Format32fC4:
		return status(C.nppiSwapChannels_32f_C4R_Ctx(f32(src), step(src), f32(dst), step(dst), r, &o[0], c))
	}
	return noVariant
}

func (nppLibrary) arithmetic(op arithOp, f Format, src1, src2, dst plane,
	roi Size, scale int, sc *StreamContext) Status {
	r, c, s := csize(roi), cctx(sc), C.int(scale)
	a, b := src1, src2
	switch op {
	case opAdd:
		switch f {
		case Format8uC1:
			return status(C.nppiAdd_8u_C1RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format8uC3:
			return status(C.nppiAdd_8u_C3RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format8uC4:
			return status(C.nppiAdd_8u_C4RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format16uC1:
			return status(C.nppiAdd_16u_C1RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format16uC3:
			return status(C.nppiAdd_16u_C3RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format16uC4:
			return status(C.nppiAdd_16u_C4RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format32fC1:
			return status(C.nppiAdd_32f_C1R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		case Format32fC3:
			return status(C.nppiAdd_32f_C3R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		case Format32fC4:
			return status(C.nppiAdd_32f_C4R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		}
	case opSub:
		switch f {
		case Format8uC1:
			return status(C.nppiSub_8u_C1RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format8uC3:
			return status(C.nppiSub_8u_C3RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format8uC4:
			return status(C.nppiSub_8u_C4RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format16uC1:
			return status(C.nppiSub_16u_C1RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format16uC3:
			return status(C.nppiSub_16u_C3RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format16uC4:
			return status(C.nppiSub_16u_C4RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format32fC1:
			return status(C.nppiSub_32f_C1R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		case Format32fC3:
			return status(C.nppiSub_32f_C3R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		case Format32fC4:
			return status(C.nppiSub_32f_C4R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		}
	case opMul:
		switch f {
		case Format8uC1:
			return status(C.nppiMul_8u_C1RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format8uC3:
			return status(C.nppiMul_8u_C3RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format8uC4:
			return status(C.nppiMul_8u_C4RSfs_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, s, c))
		case Format16uC1:
			return status(C.nppiMul_16u_C1RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format16uC3:
			return status(C.nppiMul_16u_C3RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format16uC4:
			return status(C.nppiMul_16u_C4RSfs_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, s, c))
		case Format32fC1:
			return status(C.nppiMul_32f_C1R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		case Format32fC3:
			return status(C.nppiMul_32f_C3R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		case Format32fC4:
			return status(C.nppiMul_32f_C4R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		}
	case opAbsDiff:
		switch f {
		case Format8uC1:
			return status(C.nppiAbsDiff_8u_C1R_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, c))
		case Format8uC3:
			return status(C.nppiAbsDiff_8u_C3R_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, c))
		case Format8uC4:
			return status(C.nppiAbsDiff_8u_C4R_Ctx(u8(a), step(a), u8(b), step(b), u8(dst), step(dst), r, c))
		case Format16uC1:
			return status(C.nppiAbsDiff_16u_C1R_Ctx(u16(a), step(a), u16(b), step(b), u16(dst), step(dst), r, c))
		case Format32fC1:
			return status(C.nppiAbsDiff_32f_C1R_Ctx(f32(a), step(a), f32(b), step(b), f32(dst), step(dst), r, c))
		}
	}
	return noVariant
}

func (nppLibrary) threshold(f Format, src, dst plane, roi Size,
	level float64, op CmpOp, sc *StreamContext) Status {
	r, c, o := csize(roi), cctx(sc), C.NppCmpOp(op)
	t8 := [3]C.Npp8u{C.Npp8u(level), C.Npp8u(level), C.Npp8u(level)}
	t16u := [3]C.Npp16u{C.Npp16u(level), C.Npp16u(level), C.Npp16u(level)}
	t16s := [3]C.Npp16s{C.Npp16s(level), C.Npp16s(level), C.Npp16s(level)}
	t32f := [3]C.Npp32f{C.Npp32f(level), C.Npp32f(level), C.Npp32f(level)}
	switch f {
	case Format8uC1:
		return status(C.nppiThreshold_8u_C1R_Ctx(u8(src), step(src), u8(dst), step(dst), r, t8[0], o, c))
	case Format8uC3:
		return status(C.nppiThreshold_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, &t8[0], o, c))
	case Format16uC1:
		return status(C.nppiThreshold_16u_C1R_Ctx(u16(src), step(src), u16(dst), step(dst), r, t16u[0], o, c))
	case Format16uC3:
		return status(C.nppiThreshold_16u_C3R_Ctx(u16(src), step(src), u16(dst), step(dst), r, &t16u[0], o, c))
	case Format16sC1:
		return status(C.nppiThreshold_16s_C1R_Ctx(s16(src), step(src), s16(dst), step(dst), r, t16s[0], o, c))
	case Format16sC3:
		return status(C.nppiThreshold_16s_C3R_Ctx(s16(src), step(src), s16(dst), step(dst), r, &t16s[0], o, c))
	case Format32fC1:
		return status(C.nppiThreshold_32f_C1R_Ctx(f32(src), step(src), f32(dst), step(dst), r, t32f[0], o, c))
	case Format32fC3:
		return status(C.nppiThreshold_32f_C3R_Ctx(f32(src), step(src), f32(dst), step(dst), r, &t32f[0], o, c))
	}
	return noVariant
}

func (nppLibrary) colorConvert(conv colorConversion, f Format, src,
	dst plane, roi Size, sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	switch conv {
	case convRGBToGray:
		switch f {
		case Format8uC3:
			return status(C.nppiRGBToGray_8u_C3C1R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
		case Format16uC3:
			return status(C.nppiRGBToGray_16u_C3C1R_Ctx(u16(src), step(src), u16(dst), step(dst), r, c))
		case Format16sC3:
			return status(C.nppiRGBToGray_16s_C3C1R_Ctx(s16(src), step(src), s16(dst), step(dst), r, c))
		case Format32fC3:
			return status(C.nppiRGBToGray_32f_C3C1R_Ctx(f32(src), step(src), f32(dst), step(dst), r, c))
		}
		return noVariant
	}
	if f != Format8uC3 {
		return noVariant
	}
	switch conv {
	case convRGBToYUV:
		return status(C.nppiRGBToYUV_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case convYUVToRGB:
		return status(C.nppiYUVToRGB_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case convRGBToYCbCr:
		return status(C.nppiRGBToYCbCr_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case convYCbCrToRGB:
		return status(C.nppiYCbCrToRGB_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case convRGBToHSV:
		return status(C.nppiRGBToHSV_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	case convHSVToRGB:
		return status(C.nppiHSVToRGB_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, c))
	}
	return noVariant
}

func (nppLibrary) colorToGray(f Format, src, dst plane, roi Size,
	coeffs [4]float32, sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	var k [4]C.Npp32f
	for i, v := range coeffs {
		k[i] = C.Npp32f(v)
	}
	switch f {
	case Format8uC3:
		return status(C.nppiColorToGray_8u_C3C1R_Ctx(u8(src), step(src), u8(dst), step(dst), r, &k[0], c))
	case Format8uC4:
		return status(C.nppiColorToGray_8u_C4C1R_Ctx(u8(src), step(src), u8(dst), step(dst), r, &k[0], c))
	case Format16uC3:
		return status(C.nppiColorToGray_16u_C3C1R_Ctx(u16(src), step(src), u16(dst), step(dst), r, &k[0], c))
	case Format16uC4:
		return status(C.nppiColorToGray_16u_C4C1R_Ctx(u16(src), step(src), u16(dst), step(dst), r, &k[0], c))
	case Format16sC3:
		return status(C.nppiColorToGray_16s_C3C1R_Ctx(s16(src), step(src), s16(dst), step(dst), r, &k[0], c))
	case Format16sC4:
		return status(C.nppiColorToGray_16s_C4C1R_Ctx(s16(src), step(src), s16(dst), step(dst), r, &k[0], c))
	case Format32fC3:
		return status(C.nppiColorToGray_32f_C3C1R_Ctx(f32(src), step(src), f32(dst), step(dst), r, &k[0], c))
	case Format32fC4:
		return status(C.nppiColorToGray_32f_C4C1R_Ctx(f32(src), step(src), f32(dst), step(dst), r, &k[0], c))
	}
	return noVariant
}

func (nppLibrary) colorTwist(f Format, src, dst plane, roi Size,
	twist [3][4]float32, sc *StreamContext) Status {
	r, c := csize(roi), cctx(sc)
	var t [3][4]C.Npp32f
	for i := range twist {
		for j, v := range twist[i] {
			t[i][j] = C.Npp32f(v)
		}
	}
	switch f {
	case Format8uC3:
		return status(C.nppiColorTwist32f_8u_C3R_Ctx(u8(src), step(src), u8(dst), step(dst), r, &t[0], c))
	case Format8uC4:
		return status(C.nppiColorTwist32f_8u_C4R_Ctx(u8(src), step(src), u8(dst), step(dst), r, &t[0], c))
	case Format16uC3:
		return status(C.nppiColorTwist32f_16u_C3R_Ctx(u16(src), step(src), u16(dst), step(dst), r, &t[0], c))
	case Format32fC3:
		return status(C.nppiColorTwist_32f_C3R_Ctx(f32(src), step(src), f32(dst), step(dst), r, &t[0], c))
	}
	return noVariant
}
