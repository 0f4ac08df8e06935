//go:build npp && cgo

package gonpp

// #include "gonpp_npp.h"
import "C"

func (nppLibrary) statisticBufferSize(stat Statistic, f Format, roi Size,
	sc *StreamContext) (int, Status) {
	r, c := csize(roi), cctx(sc)
	var n C.size_t
	var st C.NppStatus
	switch stat {
	case StatisticSum:
		switch f {
		case Format8uC1:
			st = C.nppiSumGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format8uC3:
			st = C.nppiSumGetBufferHostSize_8u_C3R_Ctx(r, &n, c)
		case Format8uC4:
			st = C.nppiSumGetBufferHostSize_8u_C4R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiSumGetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format16uC3:
			st = C.nppiSumGetBufferHostSize_16u_C3R_Ctx(r, &n, c)
		case Format16uC4:
			st = C.nppiSumGetBufferHostSize_16u_C4R_Ctx(r, &n, c)
		case Format16sC1:
			st = C.nppiSumGetBufferHostSize_16s_C1R_Ctx(r, &n, c)
		case Format16sC3:
			st = C.nppiSumGetBufferHostSize_16s_C3R_Ctx(r, &n, c)
		case Format16sC4:
			st = C.nppiSumGetBufferHostSize_16s_C4R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiSumGetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		case Format32fC3:
			st = C.nppiSumGetBufferHostSize_32f_C3R_Ctx(r, &n, c)
		case Format32fC4:
			st = C.nppiSumGetBufferHostSize_32f_C4R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticMean:
		switch f {
		case Format8uC1:
			st = C.nppiMeanGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format8uC3:
			st = C.nppiMeanGetBufferHostSize_8u_C3R_Ctx(r, &n, c)
		case Format8uC4:
			st = C.nppiMeanGetBufferHostSize_8u_C4R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiMeanGetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format16uC3:
			st = C.nppiMeanGetBufferHostSize_16u_C3R_Ctx(r, &n, c)
		case Format16uC4:
			st = C.nppiMeanGetBufferHostSize_16u_C4R_Ctx(r, &n, c)
		case Format16sC1:
			st = C.nppiMeanGetBufferHostSize_16s_C1R_Ctx(r, &n, c)
		case Format16sC3:
			st = C.nppiMeanGetBufferHostSize_16s_C3R_Ctx(r, &n, c)
		case Format16sC4:
			st = C.nppiMeanGetBufferHostSize_16s_C4R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiMeanGetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		case Format32fC3:
			st = C.nppiMeanGetBufferHostSize_32f_C3R_Ctx(r, &n, c)
		case Format32fC4:
			st = C.nppiMeanGetBufferHostSize_32f_C4R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticMeanStdDev:
		switch f {
		case Format8uC1:
			st = C.nppiMeanStdDevGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiMeanStdDevGetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiMeanStdDevGetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticMinMax:
		switch f {
		case Format8uC1:
			st = C.nppiMinMaxGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format8uC3:
			st = C.nppiMinMaxGetBufferHostSize_8u_C3R_Ctx(r, &n, c)
		case Format8uC4:
			st = C.nppiMinMaxGetBufferHostSize_8u_C4R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiMinMaxGetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format16uC3:
			st = C.nppiMinMaxGetBufferHostSize_16u_C3R_Ctx(r, &n, c)
		case Format16uC4:
			st = C.nppiMinMaxGetBufferHostSize_16u_C4R_Ctx(r, &n, c)
		case Format16sC1:
			st = C.nppiMinMaxGetBufferHostSize_16s_C1R_Ctx(r, &n, c)
		case Format16sC3:
			st = C.nppiMinMaxGetBufferHostSize_16s_C3R_Ctx(r, &n, c)
		case Format16sC4:
			st = C.nppiMinMaxGetBufferHostSize_16s_C4R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiMinMaxGetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		case Format32fC3:
			st = C.nppiMinMaxGetBufferHostSize_32f_C3R_Ctx(r, &n, c)
		case Format32fC4:
			st = C.nppiMinMaxGetBufferHostSize_32f_C4R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticMinMaxIndex:
		switch f {
		case Format8uC1:
			st = C.nppiMinMaxIndxGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiMinMaxIndxGetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiMinMaxIndxGetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticNormInf:
		switch f {
		case Format8uC1:
			st = C.nppiNormInfGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format8uC3:
			st = C.nppiNormInfGetBufferHostSize_8u_C3R_Ctx(r, &n, c)
		case Format8uC4:
			st = C.nppiNormInfGetBufferHostSize_8u_C4R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiNormInfGetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format16uC3:
			st = C.nppiNormInfGetBufferHostSize_16u_C3R_Ctx(r, &n, c)
		case Format16uC4:
			st = C.nppiNormInfGetBufferHostSize_16u_C4R_Ctx(r, &n, c)
		case Format16sC1:
			st = C.nppiNormInfGetBufferHostSize_16s_C1R_Ctx(r, &n, c)
		case Format16sC3:
			st = C.nppiNormInfGetBufferHostSize_16s_C3R_Ctx(r, &n, c)
		case Format16sC4:
			st = C.nppiNormInfGetBufferHostSize_16s_C4R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiNormInfGetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		case Format32fC3:
			st = C.nppiNormInfGetBufferHostSize_32f_C3R_Ctx(r, &n, c)
		case Format32fC4:
			st = C.nppiNormInfGetBufferHostSize_32f_C4R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticNormL1:
		switch f {
		case Format8uC1:
			st = C.nppiNormL1GetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format8uC3:
			st = C.nppiNormL1GetBufferHostSize_8u_C3R_Ctx(r, &n, c)
		case Format8uC4:
			st = C.nppiNormL1GetBufferHostSize_8u_C4R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiNormL1GetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format16uC3:
			st = C.nppiNormL1GetBufferHostSize_16u_C3R_Ctx(r, &n, c)
		case Format16uC4:
			st = C.nppiNormL1GetBufferHostSize_16u_C4R_Ctx(r, &n, c)
		case Format16sC1:
			st = C.nppiNormL1GetBufferHostSize_16s_C1R_Ctx(r, &n, c)
		case Format16sC3:
			st = C.nppiNormL1GetBufferHostSize_16s_C3R_Ctx(r, &n, c)
		case Format16sC4:
			st = C.nppiNormL1GetBufferHostSize_16s_C4R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiNormL1GetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		case Format32fC3:
			st = C.nppiNormL1GetBufferHostSize_32f_C3R_Ctx(r, &n, c)
		case Format32fC4:
			st = C.nppiNormL1GetBufferHostSize_32f_C4R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticNormL2:
		switch f {
		case Format8uC1:
			st = C.nppiNormL2GetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format8uC3:
			st = C.nppiNormL2GetBufferHostSize_8u_C3R_Ctx(r, &n, c)
		case Format8uC4:
			st = C.nppiNormL2GetBufferHostSize_8u_C4R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiNormL2GetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format16uC3:
			st = C.nppiNormL2GetBufferHostSize_16u_C3R_Ctx(r, &n, c)
		case Format16uC4:
			st = C.nppiNormL2GetBufferHostSize_16u_C4R_Ctx(r, &n, c)
		case Format16sC1:
			st = C.nppiNormL2GetBufferHostSize_16s_C1R_Ctx(r, &n, c)
		case Format16sC3:
			st = C.nppiNormL2GetBufferHostSize_16s_C3R_Ctx(r, &n, c)
		case Format16sC4:
			st = C.nppiNormL2GetBufferHostSize_16s_C4R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiNormL2GetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		case Format32fC3:
			st = C.nppiNormL2GetBufferHostSize_32f_C3R_Ctx(r, &n, c)
		case Format32fC4:
			st = C.nppiNormL2GetBufferHostSize_32f_C4R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticNormDiffInf:
		switch f {
		case Format8uC1:
			st = C.nppiNormDiffInfGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiNormDiffInfGetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiNormDiffInfGetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticNormDiffL1:
		switch f {
		case Format8uC1:
			st = C.nppiNormDiffL1GetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiNormDiffL1GetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiNormDiffL1GetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	case StatisticNormDiffL2:
		switch f {
		case Format8uC1:
			st = C.nppiNormDiffL2GetBufferHostSize_8u_C1R_Ctx(r, &n, c)
		case Format16uC1:
			st = C.nppiNormDiffL2GetBufferHostSize_16u_C1R_Ctx(r, &n, c)
		case Format32fC1:
			st = C.nppiNormDiffL2GetBufferHostSize_32f_C1R_Ctx(r, &n, c)
		default:
			return 0, noVariant
		}
	default:
		return 0, noVariant
	}
	return int(n), status(st)
}

func (nppLibrary) sum(f Format, src plane, roi Size, buf, out DevicePtr,
	sc *StreamContext) Status {
	r, b, o, c := csize(roi), dev[C.Npp8u](buf), dev[C.Npp64f](out), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiSum_8u_C1R_Ctx(u8(src), step(src), r, b, o, c))
	case Format8uC3:
		return status(C.nppiSum_8u_C3R_Ctx(u8(src), step(src), r, b, o, c))
	case Format8uC4:
		return status(C.nppiSum_8u_C4R_Ctx(u8(src), step(src), r, b, o, c))
	case Format16uC1:
		return status(C.nppiSum_16u_C1R_Ctx(u16(src), step(src), r, b, o, c))
	case Format16uC3:
		return status(C.nppiSum_16u_C3R_Ctx(u16(src), step(src), r, b, o, c))
	case Format16uC4:
		return status(C.nppiSum_16u_C4R_Ctx(u16(src), step(src), r, b, o, c))
	case Format16sC1:
		return status(C.nppiSum_16s_C1R_Ctx(s16(src), step(src), r, b, o, c))
	case Format16sC3:
		return status(C.nppiSum_16s_C3R_Ctx(s16(src), step(src), r, b, o, c))
	case Format16sC4:
		return status(C.nppiSum_16s_C4R_Ctx(s16(src), step(src), r, b, o, c))
	case Format32fC1:
		return status(C.nppiSum_32f_C1R_Ctx(f32(src), step(src), r, b, o, c))
	case Format32fC3:
		return status(C.nppiSum_32f_C3R_Ctx(f32(src), step(src), r, b, o, c))
	case Format32fC4:
		return status(C.nppiSum_32f_C4R_Ctx(f32(src), step(src), r, b, o, c))
	}
	return noVariant
}

func (nppLibrary) mean(f Format, src plane, roi Size, buf, out DevicePtr,
	sc *StreamContext) Status {
	r, b, o, c := csize(roi), dev[C.Npp8u](buf), dev[C.Npp64f](out), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiMean_8u_C1R_Ctx(u8(src), step(src), r, b, o, c))
	case Format8uC3:
		return status(C.nppiMean_8u_C3R_Ctx(u8(src), step(src), r, b, o, c))
	case Format8uC4:
		return status(C.nppiMean_8u_C4R_Ctx(u8(src), step(src), r, b, o, c))
	case Format16uC1:
		return status(C.nppiMean_16u_C1R_Ctx(u16(src), step(src), r, b, o, c))
	case Format16uC3:
		return status(C.nppiMean_16u_C3R_Ctx(u16(src), step(src), r, b, o, c))
	case Format16uC4:
		return status(C.nppiMean_16u_C4R_Ctx(u16(src), step(src), r, b, o, c))
	case Format16sC1:
		return status(C.nppiMean_16s_C1R_Ctx(s16(src), step(src), r, b, o, c))
	case Format16sC3:
		return status(C.nppiMean_16s_C3R_Ctx(s16(src), step(src), r, b, o, c))
	case Format16sC4:
		return status(C.nppiMean_16s_C4R_Ctx(s16(src), step(src), r, b, o, c))
	case Format32fC1:
		return status(C.nppiMean_32f_C1R_Ctx(f32(src), step(src), r, b, o, c))
	case Format32fC3:
		return status(C.nppiMean_32f_C3R_Ctx(f32(src), step(src), r, b, o, c))
	case Format32fC4:
		return status(C.nppiMean_32f_C4R_Ctx(f32(src), step(src), r, b, o, c))
	}
	return noVariant
}

func (nppLibrary) meanStdDev(f Format, src plane, roi Size, buf, mean, stdDev DevicePtr,
	sc *StreamContext) Status {
	r, b, c := csize(roi), dev[C.Npp8u](buf), cctx(sc)
	m, d := dev[C.Npp64f](mean), dev[C.Npp64f](stdDev)
	switch f {
	case Format8uC1:
		return status(C.nppiMean_StdDev_8u_C1R_Ctx(u8(src), step(src), r, b, m, d, c))
	case Format16uC1:
		return status(C.nppiMean_StdDev_16u_C1R_Ctx(u16(src), step(src), r, b, m, d, c))
	case Format32fC1:
		return status(C.nppiMean_StdDev_32f_C1R_Ctx(f32(src), step(src), r, b, m, d, c))
	}
	return noVariant
}

func (nppLibrary) minMax(f Format, src plane, roi Size, min, max, buf DevicePtr,
	sc *StreamContext) Status {
	r, b, c := csize(roi), dev[C.Npp8u](buf), cctx(sc)
	switch f {
	case Format8uC1:
		return status(C.nppiMinMax_8u_C1R_Ctx(u8(src), step(src), r, dev[C.Npp8u](min), dev[C.Npp8u](max), b, c))
	case Format8uC3:
		return status(C.nppiMinMax_8u_C3R_Ctx(u8(src), step(src), r, dev[C.Npp8u](min), dev[C.Npp8u](max), b, c))
	case Format8uC4:
		return status(C.nppiMinMax_8u_C4R_Ctx(u8(src), step(src), r, dev[C.Npp8u](min), dev[C.Npp8u](max), b, c))
	case Format16uC1:
		return status(C.nppiMinMax_16u_C1R_Ctx(u16(src), step(src), r, dev[C.Npp16u](min), dev[C.Npp16u](max), b, c))
	case Format16uC3:
		return status(C.nppiMinMax_16u_C3R_Ctx(u16(src), step(src), r, dev[C.Npp16u](min), dev[C.Npp16u](max), b, c))
	case Format16uC4:
		return status(C.nppiMinMax_16u_C4R_Ctx(u16(src), step(src), r, dev[C.Npp16u](min), dev[C.Npp16u](max), b, c))
	case Format16sC1:
		return status(C.nppiMinMax_16s_C1R_Ctx(s16(src), step(src), r, dev[C.Npp16s](min), dev[C.Npp16s](max), b, c))
	case Format16sC3:
		return status(C.nppiMinMax_16s_C3R_Ctx(s16(src), step(src), r, dev[C.Npp16s](min), dev[C.Npp16s](max), b, c))
	case Format16sC4:
		return status(C.nppiMinMax_16s_C4R_Ctx(s16(src), step(src), r, dev[C.Npp16s](min), dev[C.Npp16s](max), b, c))
	case Format32fC1:
		return status(C.nppiMinMax_32f_C1R_Ctx(f32(src), step(src), r, dev[C.Npp32f](min), dev[C.Npp32f](max), b, c))
	case Format32fC3:
		return status(C.nppiMinMax_32f_C3R_Ctx(f32(src), step(src), r, dev[C.Npp32f](min), dev[C.Npp32f](max), b, c))
	case Format32fC4:
		return status(C.nppiMinMax_32f_C4R_Ctx(f32(src), step(src), r, dev[C.Npp32f](min), dev[C.Npp32f](max), b, c))
	}
	return noVariant
}

func (nppLibrary) minMaxIndex(f Format, src plane, roi Size, minVal, maxVal, minIdx,
	maxIdx, buf DevicePtr, sc *StreamContext) Status {
	r, b, c := csize(roi), dev[C.Npp8u](buf), cctx(sc)
	lo, hi := dev[C.NppiPoint](minIdx), dev[C.NppiPoint](maxIdx)
	switch f {
	case Format8uC1:
		return status(C.nppiMinMaxIndx_8u_C1R_Ctx(u8(src), step(src), r, dev[C.Npp8u](minVal), dev[C.Npp8u](maxVal), lo, hi, b, c))
	case Format16uC1:
		return status(C.nppiMinMaxIndx_16u_C1R_Ctx(u16(src), step(src), r, dev[C.Npp16u](minVal), dev[C.Npp16u](maxVal), lo, hi, b, c))
	case Format32fC1:
		return status(C.nppiMinMaxIndx_32f_C1R_Ctx(f32(src), step(src), r, dev[C.Npp32f](minVal), dev[C.Npp32f](maxVal), lo, hi, b, c))
	}
	return noVariant
}

func (nppLibrary) norm(kind Norm, f Format, src plane, roi Size, out,
	buf DevicePtr, sc *StreamContext) Status {
	r, o, b, c := csize(roi), dev[C.Npp64f](out), dev[C.Npp8u](buf), cctx(sc)
	switch kind {
	case NormInf:
		switch f {
		case Format8uC1:
			return status(C.nppiNorm_Inf_8u_C1R_Ctx(u8(src), step(src), r, o, b, c))
		case Format8uC3:
			return status(C.nppiNorm_Inf_8u_C3R_Ctx(u8(src), step(src), r, o, b, c))
		case Format8uC4:
			return status(C.nppiNorm_Inf_8u_C4R_Ctx(u8(src), step(src), r, o, b, c))
		case Format16uC1:
			return status(C.nppiNorm_Inf_16u_C1R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16uC3:
			return status(C.nppiNorm_Inf_16u_C3R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16uC4:
			return status(C.nppiNorm_Inf_16u_C4R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16sC1:
			return status(C.nppiNorm_Inf_16s_C1R_Ctx(s16(src), step(src), r, o, b, c))
		case Format16sC3:
			return status(C.nppiNorm_Inf_16s_C3R_Ctx(s16(src), step(src), r, o, b, c))
		case Format16sC4:
			return status(C.nppiNorm_Inf_16s_C4R_Ctx(s16(src), step(src), r, o, b, c))
		case Format32fC1:
			return status(C.nppiNorm_Inf_32f_C1R_Ctx(f32(src), step(src), r, o, b, c))
		case Format32fC3:
			return status(C.nppiNorm_Inf_32f_C3R_Ctx(f32(src), step(src), r, o, b, c))
		case Format32fC4:
			return status(C.nppiNorm_Inf_32f_C4R_Ctx(f32(src), step(src), r, o, b, c))
		}
	case NormL1:
		switch f {
		case Format8uC1:
			return status(C.nppiNorm_L1_8u_C1R_Ctx(u8(src), step(src), r, o, b, c))
		case Format8uC3:
			return status(C.nppiNorm_L1_8u_C3R_Ctx(u8(src), step(src), r, o, b, c))
		case Format8uC4:
			return status(C.nppiNorm_L1_8u_C4R_Ctx(u8(src), step(src), r, o, b, c))
		case Format16uC1:
			return status(C.nppiNorm_L1_16u_C1R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16uC3:
			return status(C.nppiNorm_L1_16u_C3R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16uC4:
			return status(C.nppiNorm_L1_16u_C4R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16sC1:
			return status(C.nppiNorm_L1_16s_C1R_Ctx(s16(src), step(src), r, o, b, c))
		case Format16sC3:
			return status(C.nppiNorm_L1_16s_C3R_Ctx(s16(src), step(src), r, o, b, c))
		case Format16sC4:
			return status(C.nppiNorm_L1_16s_C4R_Ctx(s16(src), step(src), r, o, b, c))
		case Format32fC1:
			return status(C.nppiNorm_L1_32f_C1R_Ctx(f32(src), step(src), r, o, b, c))
		case Format32fC3:
			return status(C.nppiNorm_L1_32f_C3R_Ctx(f32(src), step(src), r, o, b, c))
		case Format32fC4:
			return status(C.nppiNorm_L1_32f_C4R_Ctx(f32(src), step(src), r, o, b, c))
		}
	case NormL2:
		switch f {
		case Format8uC1:
			return status(C.nppiNorm_L2_8u_C1R_Ctx(u8(src), step(src), r, o, b, c))
		case Format8uC3:
			return status(C.nppiNorm_L2_8u_C3R_Ctx(u8(src), step(src), r, o, b, c))
		case Format8uC4:
			return status(C.nppiNorm_L2_8u_C4R_Ctx(u8(src), step(src), r, o, b, c))
		case Format16uC1:
			return status(C.nppiNorm_L2_16u_C1R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16uC3:
			return status(C.nppiNorm_L2_16u_C3R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16uC4:
			return status(C.nppiNorm_L2_16u_C4R_Ctx(u16(src), step(src), r, o, b, c))
		case Format16sC1:
			return status(C.nppiNorm_L2_16s_C1R_Ctx(s16(src), step(src), r, o, b, c))
		case Format16sC3:
			return status(C.nppiNorm_L2_16s_C3R_Ctx(s16(src), step(src), r, o, b, c))
		case Format16sC4:
			return status(C.nppiNorm_L2_16s_C4R_Ctx(s16(src), step(src), r, o, b, c))
		case Format32fC1:
			return status(C.nppiNorm_L2_32f_C1R_Ctx(f32(src), step(src), r, o, b, c))
		case Format32fC3:
			return status(C.nppiNorm_L2_32f_C3R_Ctx(f32(src), step(src), r, o, b, c))
		case Format32fC4:
			return status(C.nppiNorm_L2_32f_C4R_Ctx(f32(src), step(src), r, o, b, c))
		}
	}
	return noVariant
}

func (nppLibrary) normDiff(kind Norm, f Format, src1, src2 plane, roi Size,
	out, buf DevicePtr, sc *StreamContext) Status {
	r, o, b, c := csize(roi), dev[C.Npp64f](out), dev[C.Npp8u](buf), cctx(sc)
	switch kind {
	case NormInf:
		switch f {
		case Format8uC1:
			return status(C.nppiNormDiff_Inf_8u_C1R_Ctx(u8(src1), step(src1), u8(src2), step(src2), r, o, b, c))
		case Format16uC1:
			return status(C.nppiNormDiff_Inf_16u_C1R_Ctx(u16(src1), step(src1), u16(src2), step(src2), r, o, b, c))
		case Format32fC1:
			return status(C.nppiNormDiff_Inf_32f_C1R_Ctx(f32(src1), step(src1), f32(src2), step(src2), r, o, b, c))
		}
	case NormL1:
		switch f {
		case Format8uC1:
			return status(C.nppiNormDiff_L1_8u_C1R_Ctx(u8(src1), step(src1), u8(src2), step(src2), r, o, b, c))
		case Format16uC1:
			return status(C.nppiNormDiff_L1_16u_C1R_Ctx(u16(src1), step(src1), u16(src2), step(src2), r, o, b, c))
		case Format32fC1:
			return status(C.nppiNormDiff_L1_32f_C1R_Ctx(f32(src1), step(src1), f32(src2), step(src2), r, o, b, c))
		}
	case NormL2:
		switch f {
		case Format8uC1:
			return status(C.nppiNormDiff_L2_8u_C1R_Ctx(u8(src1), step(src1), u8(src2), step(src2), r, o, b, c))
		case Format16uC1:
			return status(C.nppiNormDiff_L2_16u_C1R_Ctx(u16(src1), step(src1), u16(src2), step(src2), r, o, b, c))
		case Format32fC1:
			return status(C.nppiNormDiff_L2_32f_C1R_Ctx(f32(src1), step(src1), f32(src2), step(src2), r, o, b, c))
		}
	}
	return noVariant
}

func (nppLibrary) histogramEvenBufferSize(f Format, roi Size, levels int,
	sc *StreamContext) (int, Status) {
	r, l, c := csize(roi), C.int(levels), cctx(sc)
	var n C.size_t
	var st C.NppStatus
	switch f {
	case Format8uC1:
		st = C.nppiHistogramEvenGetBufferSize_8u_C1R_Ctx(r, l, &n, c)
	case Format16uC1:
		st = C.nppiHistogramEvenGetBufferSize_16u_C1R_Ctx(r, l, &n, c)
	case Format16sC1:
		st = C.nppiHistogramEvenGetBufferSize_16s_C1R_Ctx(r, l, &n, c)
	default:
		return 0, noVariant
	}
	return int(n), status(st)
}

func (nppLibrary) histogramEven(f Format, src plane, roi Size, hist DevicePtr,
	levels int, lower, upper int32, buf DevicePtr, sc *StreamContext) Status {
	r, h, c := csize(roi), dev[C.Npp32s](hist), cctx(sc)
	n, lo, hi, b := C.int(levels), C.Npp32s(lower), C.Npp32s(upper), dev[C.Npp8u](buf)
	switch f {
	case Format8uC1:
		return status(C.nppiHistogramEven_8u_C1R_Ctx(u8(src), step(src), r, h, n, lo, hi, b, c))
	case Format16uC1:
		return status(C.nppiHistogramEven_16u_C1R_Ctx(u16(src), step(src), r, h, n, lo, hi, b, c))
	case Format16sC1:
		return status(C.nppiHistogramEven_16s_C1R_Ctx(s16(src), step(src), r, h, n, lo, hi, b, c))
	}
	return noVariant
}

func (nppLibrary) evenLevels(levels int, lower, upper int32) ([]int32,
	Status) {
	out := make([]C.Npp32s, levels)
	st := C.nppiEvenLevelsHost_32s(&out[0], C.int(levels), C.Npp32s(lower),
		C.Npp32s(upper))
	res := make([]int32, levels)
	for i, v := range out {
		res[i] = int32(v)
	}
	return res, status(st)
}

func (nppLibrary) qualityBufferSize(m QualityMetric, f Format, roi Size,
	sc *StreamContext) (int, Status) {
	if f != Format8uC1 {
		return 0, noVariant
	}
	r, c := csize(roi), cctx(sc)
	var n C.size_t
	var st C.NppStatus
	switch m {
	case QualityMSE:
		st = C.nppiMSEGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
	case QualityPSNR:
		st = C.nppiPSNRGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
	case QualitySSIM:
		st = C.nppiSSIMGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
	case QualityMSSSIM:
		st = C.nppiMSSSIMGetBufferHostSize_8u_C1R_Ctx(r, &n, c)
	default:
		return 0, noVariant
	}
	return int(n), status(st)
}

func (nppLibrary) quality(m QualityMetric, f Format, src1, src2 plane,
	roi Size, out, buf DevicePtr, sc *StreamContext) Status {
	if f != Format8uC1 {
		return noVariant
	}
	r, o, b, c := csize(roi), dev[C.Npp32f](out), dev[C.Npp8u](buf), cctx(sc)
	switch m {
	case QualityMSE:
		return status(C.nppiMSE_8u_C1R_Ctx(u8(src1), step(src1), u8(src2), step(src2), r, o, b, c))
	case QualityPSNR:
		return status(C.nppiPSNR_8u_C1R_Ctx(u8(src1), step(src1), u8(src2), step(src2), r, o, b, c))
	case QualitySSIM:
		return status(C.nppiSSIM_8u_C1R_Ctx(u8(src1), step(src1), u8(src2), step(src2), r, o, b, c))
	case QualityMSSSIM:
		return status(C.nppiMSSSIM_8u_C1R_Ctx(u8(src1), step(src1), u8(src2), step(src2), r, o, b, c))
	}
	return noVariant
}

func (nppLibrary) floodFillBufferSize(roi Size) (int, Status) {
	var n C.int
	st := C.nppiFloodFillGetBufferSize(csize(roi), &n)
	return int(n), status(st)
}

func (nppLibrary) floodFill(srcDst plane, seed Point, value uint8, norm Norm,
	roi Size, buf DevicePtr, sc *StreamContext) (ConnectedRegion, Status) {
	var region C.NppiConnectedRegion
	st := C.nppiFloodFill_8u_C1IR_Ctx(u8(srcDst), step(srcDst), cpoint(seed),
		C.Npp8u(value), C.NppiNorm(norm), csize(roi), &region,
		dev[C.Npp8u](buf), cctx(sc))
	box := region.oBoundingBox
	return ConnectedRegion{
		BoundingBox: Rect{int(box.x), int(box.y), int(box.width),
			int(box.height)},
		PixelCount: uint32(region.nConnectedPixelCount),
		Value: [3]uint32{uint32(region.aConnectedPixelValue[0]),
			uint32(region.aConnectedPixelValue[1]),
			uint32(region.aConnectedPixelValue[2])},
	}, status(st)
}

func (nppLibrary) labelMarkersBufferSize(roi Size) (int, Status) {
	var n C.int
	st := C.nppiLabelMarkersUFGetBufferSize_32u_C1R(csize(roi), &n)
	return int(n), status(st)
}

func (nppLibrary) labelMarkers(src, dst plane, roi Size, norm Norm,
	buf DevicePtr, sc *StreamContext) Status {
	return status(C.nppiLabelMarkersUF_8u32u_C1R_Ctx(u8(src), step(src),
		u32(dst), step(dst), csize(roi), C.NppiNorm(norm), dev[C.Npp8u](buf),
		cctx(sc)))
}
